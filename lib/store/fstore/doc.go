// Package fstore implements a file-backed, single-node key-value store based
// on the store.IStore interface. It mirrors the semantics of a browser's
// synchronous local storage: every write is persisted before the call
// returns, and a missing or corrupt snapshot file silently degrades to an
// empty store.
//
// Key Features:
//   - Snapshot load on open, full re-persist after every write
//   - Atomic snapshot replacement (write to temp file, then rename)
//   - "Default on corrupt read" policy instead of failing hard
//
// Implementation Details:
//
//   - Persistence Granularity: The complete database is written on every
//     mutation. This is wasteful for large data sets but exactly right for a
//     handful of small collections, and it guarantees that a crash can only
//     ever lose the single unwritten update, never corrupt the snapshot.
//
//   - Single Writer: The store assumes one process owns the snapshot file.
//     Two processes pointed at the same file race with last-write-wins on the
//     whole snapshot. This is a documented limitation, not a guarantee.
//
// For ephemeral data that doesn't need to survive restarts, use the lstore
// package instead.
package fstore
