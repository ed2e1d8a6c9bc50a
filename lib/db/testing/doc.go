// Package testing provides standardized tests and benchmarks for database
// implementations that satisfy the db.KVDB interface.
//
//   - RunKVDBTests: Runs a standardized test suite to validate implementations
//   - RunKVDBBenchmarks: Provides performance benchmarks for comparing implementations
//
// Tests are skipped automatically for features an implementation does not
// advertise via SupportsFeature.
package testing
