package db

import "io"

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplBirch Implementation = "birch"
)

// Feature represents database features as bit flags
type Feature uint64

const (
	FeatureSet    Feature = 1 << iota // Support for Set operations
	FeatureGet                        // Support for Get operations
	FeatureDelete                     // Support for Delete operations
	FeatureHas                        // Support for Has operations
	FeatureSave                       // Support for Save operations
	FeatureLoad                       // Support for Load operations
)

func (f Feature) String() string {
	switch f {
	case FeatureSet:
		return "Set"
	case FeatureGet:
		return "Get"
	case FeatureDelete:
		return "Delete"
	case FeatureHas:
		return "Has"
	case FeatureSave:
		return "Save"
	case FeatureLoad:
		return "Load"
	default:
		return "Unknown"
	}
}

type DatabaseInfo struct {
	Entries           int            `json:"entries"`
	SizeBytes         int            `json:"size_bytes"`
	DbType            Implementation `json:"db_type"`
	SupportedFeatures []Feature      `json:"supported_features"`
}

// --------------------------------------------------------------------------
// Database Interface
// --------------------------------------------------------------------------

// KVDB defines an interface for synchronous key-value database implementations.
// Every operation completes before it returns, there are no background writers
// and no partial updates: a value is always replaced wholesale.
// Implementations can vary in their feature support, which can be queried with
// SupportsFeature.
type KVDB interface {

	// --------------------------------------------------------------------------
	// Write Operations
	// --------------------------------------------------------------------------

	// Set inserts or updates an entry with the given key and value.
	// If the key already exists, the old value is overwritten.
	Set(key string, value []byte)

	// Delete removes an entry with the specified key.
	// Deleting a nonexistent key is a no-op.
	Delete(key string)

	// --------------------------------------------------------------------------
	// Query Operations
	// --------------------------------------------------------------------------

	// Get retrieves the value for an exact key.
	// The boolean return value indicates whether a value for the key was found.
	// The returned slice is a copy and safe for the caller to modify.
	Get(key string) (value []byte, loaded bool)

	// Has checks whether a key exists in the database.
	Has(key string) (loaded bool)

	// --------------------------------------------------------------------------
	// Persistence Operations
	// --------------------------------------------------------------------------

	// Save persists the current state of the database to the provided io.Writer.
	Save(w io.Writer) (err error)

	// Load restores the database state from data provided by an io.Reader.
	// Load replaces the complete current state.
	Load(r io.Reader) (err error)

	// --------------------------------------------------------------------------
	// Feature Support
	// --------------------------------------------------------------------------

	// SupportsFeature checks if the database implementation supports the specified feature.
	// Multiple features can be checked at once using the bitwise OR (|) operator.
	SupportsFeature(feature Feature) (ok bool)

	// GetInfo returns information about the database.
	GetInfo() (info DatabaseInfo)

	// Close releases any resources held by the database.
	Close() (err error)
}
