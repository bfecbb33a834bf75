// Package account implements the account and application state store: the
// live session of the signed-in user, the durable directory of every
// account known to this device, the simulated multi-provider auth flows and
// the profile state-transition operations.
//
// Ownership model: a single Store instance owns both shared mutable values
// (the session and the directory). All transitions replace the session
// wholesale under one mutex; nothing mutates it in place, so the persisted
// snapshot and the live value never alias. Consumers are handed deep copies.
//
// Persistence is two JSON documents in a storage.Store: the session under
// SessionKey (the fast rehydration path) and the directory under
// DirectoryKey. The two writes are sequential, not transactional: a crash
// between them leaves the directory one edit behind. The session document
// is authoritative on the next load, so the gap self-heals.
//
// Error policy: auth operations return a typed *Error (validation,
// authorization, not_found) with a user-facing message. Profile mutators
// never fail - with no active session or an unknown target id they are
// silent no-ops. Storage read/write failures are logged and swallowed;
// availability wins over strict durability for this local cache.
//
// Applications are permanent history: no operation deletes one.
package account
