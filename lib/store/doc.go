// Package store provides a high-level interface for key-value storage
// operations with unified error handling. It serves as an abstraction layer
// over the lower-level db.KVDB implementations.
//
// The package focuses on:
//   - A unified interface (IStore) for key-value operations across different backends
//   - Pluggable storage backend architecture through the DBFactory pattern
//
// Key Components:
//
//   - IStore Interface: The core abstraction defining operations for interacting
//     with a key-value store. All implementations share this common interface,
//     allowing applications to switch between different storage backends without
//     code changes. The interface methods return custom Error types that provide
//     detailed information about operation results.
//
//   - Error System: A structured error reporting mechanism using typed error
//     codes and descriptive messages. This system allows applications to make
//     informed decisions based on specific error conditions rather than generic
//     errors.
//
//   - DBFactory: A function type that abstracts the creation of underlying
//     db.KVDB instances, providing dependency injection and flexible
//     configuration of storage backends.
//
// Implementations:
//
//	The package includes two implementations of the IStore interface:
//
//	- Local Store (lstore): A simple in-memory implementation that directly
//	  utilizes a db.KVDB instance. Data does not survive process restarts.
//	  Suitable for tests and throwaway environments.
//	  Available in the "github.com/noticehub/noticehub/lib/store/lstore" package.
//
//	- File Store (fstore): A persistent implementation that loads a snapshot
//	  file when opened and re-persists the complete database after every
//	  write. This mirrors the semantics of a browser's synchronous local
//	  storage: every mutation is durable before the call returns, and a
//	  missing or corrupt snapshot degrades to an empty store.
//	  Available in the "github.com/noticehub/noticehub/lib/store/fstore" package.
package store
