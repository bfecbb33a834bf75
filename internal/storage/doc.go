// Package storage provides the durable key-value store backing the account
// state. Values are opaque strings (serialized JSON documents).
//
// Three backends implement the same contract:
//   - SQLiteStore: a kv table with WAL mode, for installations that want a
//     crash-safe single file with real transactional writes
//   - FileStore: one JSON document on disk, read-modify-write per call,
//     matching the app's historical native storage format
//   - MemStore: map-backed, for tests and ephemeral runs
//
// The contract tolerates absent keys (Get reports ok=false, no error) and
// assumes a single writer; the host application guarantees that in practice.
package storage
