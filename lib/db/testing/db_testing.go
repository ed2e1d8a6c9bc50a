package testing

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/noticehub/noticehub/lib/db"
)

// DBFactory is a function that creates a new instance of a KVDB implementation
type DBFactory func() db.KVDB

// RunKVDBTests runs a comprehensive test suite for a KVDB implementation.
func RunKVDBTests(t *testing.T, name string, factory DBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory())
		})

		t.Run("Has", func(t *testing.T) {
			testHas(t, factory())
		})

		t.Run("SaveLoad", func(t *testing.T) {
			testSaveLoad(t, factory)
		})

		t.Run("EdgeCases", func(t *testing.T) {
			testEdgeCases(t, factory())
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testRealisticUsage(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the database supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, database db.KVDB, feature db.Feature) {
	if !database.SupportsFeature(feature) {
		t.Skip()
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, database db.KVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureSet)
	requireFeature(t, database, db.FeatureGet)

	testKey := "test-key"
	testValue1 := []byte("test-value1")
	testValue2 := []byte("test-value2")

	database.Set(testKey, testValue1)

	result, exists := database.Get(testKey)
	if !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}

	if !bytes.Equal(result, testValue1) {
		t.Errorf("Expected value %s, got %s", testValue1, result)
	}

	database.Set(testKey, testValue2)

	result, exists = database.Get(testKey)
	if !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}

	if !bytes.Equal(result, testValue2) {
		t.Errorf("Expected value %s, got %s", testValue2, result)
	}

	_, exists = database.Get("nonexistent-key")
	if exists {
		t.Errorf("Expected nonexistent key to return exists=false")
	}

	// Mutating a returned value must not affect the stored value
	retrievedValue, _ := database.Get(testKey)
	retrievedValue[0] = 'X'

	result, _ = database.Get(testKey)
	if !bytes.Equal(result, testValue2) {
		t.Errorf("Stored value was corrupted by modifying a returned copy")
	}
}

func testDelete(t *testing.T, database db.KVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureSet)
	requireFeature(t, database, db.FeatureGet)
	requireFeature(t, database, db.FeatureDelete)

	testKey := "delete-key"
	testValue := []byte("delete-value")

	database.Set(testKey, testValue)

	if _, exists := database.Get(testKey); !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}

	database.Delete(testKey)

	if _, exists := database.Get(testKey); exists {
		t.Errorf("Expected key %s to not exist after Delete", testKey)
	}

	// Deleting a nonexistent key must be a no-op
	database.Delete("nonexistent-key")

	if _, exists := database.Get("nonexistent-key"); exists {
		t.Errorf("Delete of a nonexistent key must not create it")
	}
}

func testHas(t *testing.T, database db.KVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureSet)
	requireFeature(t, database, db.FeatureHas)
	requireFeature(t, database, db.FeatureDelete)

	testKey := "has-key"

	if database.Has(testKey) {
		t.Errorf("Expected Has to return false before Set")
	}

	database.Set(testKey, []byte("has-value"))

	if !database.Has(testKey) {
		t.Errorf("Expected Has to return true after Set")
	}

	database.Delete(testKey)

	if database.Has(testKey) {
		t.Errorf("Expected Has to return false after Delete")
	}
}

func testSaveLoad(t *testing.T, factory DBFactory) {
	source := factory()
	defer source.Close()

	requireFeature(t, source, db.FeatureSave|db.FeatureLoad)

	// Populate the source database
	count := 100
	for i := 0; i < count; i++ {
		source.Set(fmt.Sprintf("key-%d", i), []byte(fmt.Sprintf("value-%d", i)))
	}

	// Save to a buffer
	var buf bytes.Buffer
	if err := source.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load into a fresh database that holds unrelated state
	target := factory()
	defer target.Close()
	target.Set("stale-key", []byte("stale-value"))

	if err := target.Load(&buf); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Stale state must be gone
	if _, exists := target.Get("stale-key"); exists {
		t.Errorf("Expected Load to replace the complete previous state")
	}

	// All entries must round-trip
	for i := 0; i < count; i++ {
		key := fmt.Sprintf("key-%d", i)
		want := []byte(fmt.Sprintf("value-%d", i))

		got, exists := target.Get(key)
		if !exists {
			t.Errorf("Expected key %s to exist after Load", key)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Expected value %s for key %s, got %s", want, key, got)
		}
	}

	// Garbage input must fail, not panic
	if err := target.Load(bytes.NewReader([]byte("not a snapshot"))); err == nil {
		t.Errorf("Expected Load of garbage data to return an error")
	}
}

func testEdgeCases(t *testing.T, database db.KVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureSet)
	requireFeature(t, database, db.FeatureGet)

	// Empty value
	database.Set("empty-value", []byte{})
	if value, exists := database.Get("empty-value"); !exists || len(value) != 0 {
		t.Errorf("Expected empty value to round-trip, got exists=%v value=%v", exists, value)
	}

	// Empty key
	database.Set("", []byte("empty-key-value"))
	if value, exists := database.Get(""); !exists || !bytes.Equal(value, []byte("empty-key-value")) {
		t.Errorf("Expected empty key to round-trip, got exists=%v value=%s", exists, value)
	}

	// Large value
	largeValue := make([]byte, 1024*1024)
	for i := range largeValue {
		largeValue[i] = byte(i % 256)
	}
	database.Set("large-value", largeValue)
	if value, exists := database.Get("large-value"); !exists || !bytes.Equal(value, largeValue) {
		t.Errorf("Expected large value to round-trip")
	}

	// Similar keys must not collide
	database.Set("prefix", []byte("a"))
	database.Set("prefix_", []byte("b"))
	database.Set("prefix__", []byte("c"))

	for key, want := range map[string]string{"prefix": "a", "prefix_": "b", "prefix__": "c"} {
		if value, _ := database.Get(key); !bytes.Equal(value, []byte(want)) {
			t.Errorf("Expected value %s for key %s, got %s", want, key, value)
		}
	}
}

func testRealisticUsage(t *testing.T, database db.KVDB) {
	defer database.Close()

	requireFeature(t, database, db.FeatureSet|db.FeatureGet|db.FeatureDelete|db.FeatureHas)

	// Simulate collection-style usage: a few keys rewritten wholesale many times
	keys := []string{"app_users", "app_records", "app_session"}

	for round := 0; round < 100; round++ {
		for _, key := range keys {
			database.Set(key, []byte(fmt.Sprintf("%s-rev-%d", key, round)))
		}
	}

	for _, key := range keys {
		value, exists := database.Get(key)
		if !exists {
			t.Errorf("Expected key %s to exist", key)
			continue
		}
		want := []byte(fmt.Sprintf("%s-rev-99", key))
		if !bytes.Equal(value, want) {
			t.Errorf("Expected latest revision %s for key %s, got %s", want, key, value)
		}
	}

	database.Delete("app_session")
	if database.Has("app_session") {
		t.Errorf("Expected app_session to be gone after Delete")
	}

	info := database.GetInfo()
	if info.Entries != len(keys)-1 {
		t.Errorf("Expected %d entries, got %d", len(keys)-1, info.Entries)
	}
}
