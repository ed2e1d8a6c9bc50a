package fstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/noticehub/noticehub/lib/db"
	"github.com/noticehub/noticehub/lib/db/engines/birch"
	"github.com/noticehub/noticehub/lib/store"
)

func newTestStore(t *testing.T, path string) store.IStore {
	t.Helper()

	s, err := NewFileStore(path, func() db.KVDB {
		return birch.NewBirchDB()
	})
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return s
}

func TestPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s := newTestStore(t, path)
	if err := s.Set("users", []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("session", []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Delete("session"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen: only the surviving key should be there
	reopened := newTestStore(t, path)
	defer reopened.Close()

	value, ok, err := reopened.Get("users")
	if err != nil || !ok {
		t.Fatalf("expected users to survive reopen, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(value, []byte(`[{"id":"u1"}]`)) {
		t.Errorf("unexpected value after reopen: %s", value)
	}

	if ok, _ := reopened.Has("session"); ok {
		t.Errorf("expected deleted key to stay deleted after reopen")
	}
}

func TestMissingSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	s := newTestStore(t, path)
	defer s.Close()

	info, err := s.GetDBInfo()
	if err != nil {
		t.Fatalf("GetDBInfo failed: %v", err)
	}
	if info.Entries != 0 {
		t.Errorf("expected empty store, got %d entries", info.Entries)
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(path, []byte("definitely not a snapshot"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s := newTestStore(t, path)
	defer s.Close()

	if _, ok, _ := s.Get("users"); ok {
		t.Errorf("expected no data after corrupt snapshot")
	}

	// The store must still be writable and overwrite the corrupt file
	if err := s.Set("users", []byte("[]")); err != nil {
		t.Fatalf("Set after corrupt snapshot failed: %v", err)
	}

	reopened := newTestStore(t, path)
	defer reopened.Close()
	if _, ok, _ := reopened.Get("users"); !ok {
		t.Errorf("expected store to recover by rewriting the snapshot")
	}
}

func TestEveryWriteIsDurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durable.db")

	s := newTestStore(t, path)
	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// No Close: the snapshot must already reflect the write
	reopened := newTestStore(t, path)
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	if err != nil || !ok || !bytes.Equal(value, []byte("v")) {
		t.Errorf("expected write to be durable without Close, got ok=%v value=%s err=%v", ok, value, err)
	}
}
