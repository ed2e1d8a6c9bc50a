// Package codec provides pluggable serialization for the collections stored
// in the key-value store.
//
// Two implementations are available:
//
//   - JSON (NewJSONCodec): human-readable, the default. This is the format
//     the persisted-layout contract assumes.
//   - GOB (NewGOBCodec): Go's binary encoding, denser but Go-only.
//
// All codecs implement the ICodec interface so the storage layer can switch
// formats via configuration without code changes. Decode errors are reported
// to the caller; the storage layer decides how to degrade.
package codec
