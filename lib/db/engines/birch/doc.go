// Package birch provides an in-memory implementation of the db.KVDB interface
// backed by a single concurrent map.
//
// The engine is intentionally simple: the data set it serves (a handful of
// small serialized collections) needs neither sharding nor expiration
// machinery. It offers:
//
//   - Thread-safe Set/Get/Delete/Has operations via xsync.MapOf
//   - Copy-on-read and copy-on-write semantics so callers can never corrupt
//     stored values through shared slices
//   - A versioned binary snapshot format (magic header, length-prefixed
//     entries) for Save and Load
//
// Keys are stored as full strings rather than hashes, so a snapshot restores
// the database key-for-key.
package birch
