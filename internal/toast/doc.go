// Package toast implements the transient user-notice queue.
//
// Notices are appended to an unbounded FIFO and displayed one at a time.
// Each displayed notice walks a fixed lifecycle:
//
//	queued -> entering -> resting -> exiting -> dismissed
//
// after which the next pending notice (if any) starts entering. Bursts are
// serialized, never coalesced or dropped. There is no skip or interrupt
// operation: a displayed notice always runs to completion.
//
// Collaborators that need to raise notices receive an explicit Notifier
// handle; there is no package-level registration side-channel.
package toast
