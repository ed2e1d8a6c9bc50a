// Package db provides a standardized interface for key-value database implementations.
// It defines a small KVDB interface that allows for consistent interaction with
// different database backends while abstracting implementation details.
//
// The package focuses on:
//   - A unified interface for synchronous key-value operations
//   - Feature discovery through capability flags
//   - Standardized persistence operations (whole-database snapshots)
//   - Metadata reporting
//
// Key Components:
//
//   - KVDB Interface: The core interface that all database implementations must
//     satisfy. It provides methods for basic operations (Set, Get, Has, Delete),
//     persistence operations (Save, Load) and metadata retrieval (GetInfo).
//
//   - Feature Flags: The Feature type defines capability flags that implementations
//     can advertise through the SupportsFeature method. This allows clients to
//     discover supported operations at runtime.
//
//   - Implementation Identifiers: The Implementation type provides string constants
//     for different database backends (currently "birch").
//
//   - Database Information: The DatabaseInfo structure provides standardized
//     reporting on database state, including entry counts, size statistics and
//     implementation type. Size statistics may be estimates.
//
// Note on Consistency:
//   - All operations are synchronous: a write has fully taken effect when the
//     call returns, and a subsequent read observes it.
//   - Values are replaced wholesale. There are no partial updates, so an
//     interrupted writer can never leave a value half-written.
//
// Related Packages:
//
// The engines/birch package (github.com/noticehub/noticehub/lib/db/engines/birch)
// provides an in-memory implementation of the KVDB interface backed by a
// concurrent map, with a binary snapshot format for Save and Load.
//
// The testing package (github.com/noticehub/noticehub/lib/db/testing) provides
// standardized tests and benchmarks for database implementations that satisfy
// the db.KVDB interface.
package db
