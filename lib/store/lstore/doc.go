// Package lstore implements a local, in-memory, single-node key-value store
// based on the store.IStore interface. It provides a thin wrapper around any
// db.KVDB implementation. Data is stored entirely in memory and is not
// persisted between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - Direct integration with db.KVDB implementations
//   - Feature detection to handle unsupported operations gracefully
//
// Implementation Details:
//
//   - Feature Detection: Before executing operations, the store checks if the
//     underlying db.KVDB implementation supports the requested feature through
//     the SupportsFeature method. Unsupported operations return appropriate
//     error codes rather than failing silently or producing undefined behavior.
//
//   - Composition Architecture: The store follows a composition pattern where
//     the store.DBFactory factory function injects the underlying db.KVDB
//     implementation. This allows the store to work with any db.KVDB-compatible
//     engine without modification.
//
// Suitable Use Cases:
//
//	The local store is ideal for:
//	- Ephemeral data that doesn't need to survive process restarts
//	- Testing and development environments
//	- Runtime caching within a single process
//
// For data that must survive restarts, use the fstore package instead, which
// persists a snapshot of the database after every write.
package lstore
