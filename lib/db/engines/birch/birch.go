package birch

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/noticehub/noticehub/lib/db"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

// Constants for the snapshot file format
const (
	magicNum     = "BIRCHDB\x00" // File format identifier
	birchVersion = 1             // Snapshot format version
)

// --------------------------------------------------------------------------
// Core Birch database structure
// --------------------------------------------------------------------------

// birchImpl implements db.KVDB with a single concurrent map.
// Unlike hash-sharded engines it keeps the full string keys, which is what
// allows snapshots to be restored key-for-key.
type birchImpl struct {
	data *xsync.MapOf[string, []byte]
}

// NewBirchDB creates a new BirchDB instance.
//
// Thread-safety: This function is not thread-safe and should only be called
// once during initialization.
func NewBirchDB() db.KVDB {
	return &birchImpl{
		data: xsync.NewMapOf[string, []byte](),
	}
}

// --------------------------------------------------------------------------
// Core KVDB Interface Methods - Write Operations
// --------------------------------------------------------------------------

// Set inserts or updates an entry with the given key and value.
// If the key already exists, the old value is overwritten.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (birch *birchImpl) Set(key string, value []byte) {
	// Copy value to prevent memory corruption
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	birch.data.Store(key, valueCopy)
}

// Delete removes an entry with the specified key.
// The key is not findable anymore. Deleting a nonexistent key is a no-op.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (birch *birchImpl) Delete(key string) {
	birch.data.Delete(key)
}

// --------------------------------------------------------------------------
// Core KVDB Interface Methods - Read Operations
// --------------------------------------------------------------------------

// Get retrieves the value for a key.
// The boolean indicates whether a value for the key was found.
// The returned value is a copy of the stored data and therefore safe to use and modify.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (birch *birchImpl) Get(key string) ([]byte, bool) {
	value, ok := birch.data.Load(key)
	if !ok {
		return nil, false
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return valueCopy, true
}

// Has checks if a key exists in the database.
//
// Thread-safety: This method is thread-safe and can be called concurrently.
func (birch *birchImpl) Has(key string) bool {
	_, ok := birch.data.Load(key)
	return ok
}

// --------------------------------------------------------------------------
// Persistence Operations
// --------------------------------------------------------------------------

// Save persists the database to the writer.
//
// Thread-safety: This function takes a snapshot of the data without blocking
// concurrent modifications. Entries written or deleted during Save may or may
// not be included.
func (birch *birchImpl) Save(w io.Writer) error {
	// Use a buffered writer for better performance
	bw := bufio.NewWriter(w)

	// Snapshot all entries first so the count written to the header is exact
	type entryToSave struct {
		key   string
		value []byte
	}

	var entries []entryToSave
	birch.data.Range(func(key string, value []byte) bool {
		valueCopy := make([]byte, len(value))
		copy(valueCopy, value)
		entries = append(entries, entryToSave{key, valueCopy})
		return true
	})

	// Write file header
	if _, err := bw.WriteString(magicNum); err != nil {
		return err
	}

	// Write format version
	if err := binary.Write(bw, binary.LittleEndian, uint8(birchVersion)); err != nil {
		return err
	}

	// Write total entry count
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(entries))); err != nil {
		return err
	}

	// Write entries
	for _, item := range entries {

		// Write key length and key bytes
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(item.key))); err != nil {
			return err
		}
		if _, err := bw.WriteString(item.key); err != nil {
			return err
		}

		// Write value length and value bytes
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(item.value))); err != nil {
			return err
		}
		if _, err := bw.Write(item.value); err != nil {
			return err
		}
	}

	// Flush buffer to ensure all data is written
	return bw.Flush()
}

// Load restores a database from the reader.
// The complete current state is replaced.
//
// Thread-safety: This function is not thread-safe and should not be called
// concurrently with other operations.
func (birch *birchImpl) Load(r io.Reader) error {
	// Use a buffered reader for better performance
	br := bufio.NewReader(r)

	// Read and verify magic number
	magicBytes := make([]byte, len(magicNum))
	if _, err := io.ReadFull(br, magicBytes); err != nil {
		return err
	}

	if string(magicBytes) != magicNum {
		return fmt.Errorf("invalid file format: magic number mismatch")
	}

	// Read and verify version
	var version uint8
	if err := binary.Read(br, binary.LittleEndian, &version); err != nil {
		return err
	}

	if int(version) != birchVersion {
		return fmt.Errorf("unsupported version: %d (expected %d)", version, birchVersion)
	}

	// Read entry count
	var entryCount uint64
	if err := binary.Read(br, binary.LittleEndian, &entryCount); err != nil {
		return err
	}

	// Recreate the map so stale entries from the previous state are dropped
	data := xsync.NewMapOf[string, []byte]()

	// Read entries
	for i := uint64(0); i < entryCount; i++ {
		// Read key
		var keyLen uint32
		if err := binary.Read(br, binary.LittleEndian, &keyLen); err != nil {
			return err
		}
		keyBytes := make([]byte, keyLen)
		if _, err := io.ReadFull(br, keyBytes); err != nil {
			return err
		}

		// Read value
		var valueLen uint32
		if err := binary.Read(br, binary.LittleEndian, &valueLen); err != nil {
			return err
		}
		value := make([]byte, valueLen)
		if _, err := io.ReadFull(br, value); err != nil {
			return err
		}

		data.Store(string(keyBytes), value)
	}

	birch.data = data
	return nil
}

// --------------------------------------------------------------------------
// KVDB Interface Implementation - Features and Metadata
// --------------------------------------------------------------------------

// GetInfo returns statistics about the database
func (birch *birchImpl) GetInfo() db.DatabaseInfo {
	entries := 0
	sizeBytes := 0
	birch.data.Range(func(key string, value []byte) bool {
		entries++
		sizeBytes += len(key) + len(value)
		return true
	})

	supportedFeatures := []db.Feature{
		db.FeatureSet, db.FeatureGet,
		db.FeatureDelete, db.FeatureHas,
		db.FeatureSave, db.FeatureLoad,
	}

	return db.DatabaseInfo{
		Entries:           entries,
		SizeBytes:         sizeBytes,
		DbType:            db.ImplBirch,
		SupportedFeatures: supportedFeatures,
	}
}

// SupportsFeature checks if this implementation supports a specific KVDB feature
func (birch *birchImpl) SupportsFeature(feature db.Feature) bool {
	supportedFeatures := db.FeatureSet |
		db.FeatureGet |
		db.FeatureDelete |
		db.FeatureHas |
		db.FeatureSave |
		db.FeatureLoad
	return supportedFeatures&feature == feature
}

// Close releases the database resources
func (birch *birchImpl) Close() error {
	return nil
}
