package fstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/noticehub/noticehub/lib/common"
	"github.com/noticehub/noticehub/lib/db"
	"github.com/noticehub/noticehub/lib/store"
)

var logger = common.GetLogger("fstore")

type storeImpl struct {
	db   db.KVDB
	path string
}

// NewFileStore creates a new file-backed store instance.
// The snapshot file at path is loaded when the store is opened, and the
// complete database is re-persisted after every write. A missing or corrupt
// snapshot file degrades to an empty store rather than failing: the file is a
// best-effort local cache, not a durable database.
func NewFileStore(path string, factory store.DBFactory) (store.IStore, error) {
	database := factory()

	if !database.SupportsFeature(db.FeatureSave | db.FeatureLoad) {
		return nil, store.NewError(store.RetCUnsupportedOperation, "database does not support Save/Load")
	}

	s := &storeImpl{
		db:   database,
		path: path,
	}

	if err := s.load(); err != nil {
		// degrade to empty: local cache semantics
		logger.Warningf("snapshot %s unreadable, starting empty: %v", path, err)
	}

	return s, nil
}

// load restores the database from the snapshot file if one exists.
func (s *storeImpl) load() error {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	return s.db.Load(f)
}

// persist writes the complete database to the snapshot file.
// The snapshot is written to a temporary file first and then renamed, so a
// crash mid-write can never leave a half-written snapshot behind.
func (s *storeImpl) persist() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return store.NewError(store.RetCInternalError, fmt.Sprintf("failed to create snapshot file: %v", err))
	}

	if err := s.db.Save(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return store.NewError(store.RetCInternalError, fmt.Sprintf("failed to write snapshot: %v", err))
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return store.NewError(store.RetCInternalError, fmt.Sprintf("failed to close snapshot file: %v", err))
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return store.NewError(store.RetCInternalError, fmt.Sprintf("failed to replace snapshot file: %v", err))
	}

	return nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Set(key string, value []byte) error {
	if !s.db.SupportsFeature(db.FeatureSet) {
		return store.NewError(store.RetCUnsupportedOperation, "Set operation is not supported")
	}
	s.db.Set(key, value)
	return s.persist()
}

func (s *storeImpl) Delete(key string) error {
	if !s.db.SupportsFeature(db.FeatureDelete) {
		return store.NewError(store.RetCUnsupportedOperation, "Delete operation is not supported")
	}
	s.db.Delete(key)
	return s.persist()
}

func (s *storeImpl) Get(key string) ([]byte, bool, error) {
	if !s.db.SupportsFeature(db.FeatureGet) {
		return nil, false, store.NewError(store.RetCUnsupportedOperation, "Get operation is not supported")
	}
	val, ok := s.db.Get(key)
	return val, ok, nil
}

func (s *storeImpl) Has(key string) (bool, error) {
	if !s.db.SupportsFeature(db.FeatureHas) {
		return false, store.NewError(store.RetCUnsupportedOperation, "Has operation is not supported")
	}
	return s.db.Has(key), nil
}

func (s *storeImpl) GetDBInfo() (db.DatabaseInfo, error) {
	return s.db.GetInfo(), nil
}

func (s *storeImpl) Close() error {
	return s.db.Close()
}
