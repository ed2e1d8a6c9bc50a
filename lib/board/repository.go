package board

import (
	"fmt"

	"github.com/noticehub/noticehub/lib/codec"
	"github.com/noticehub/noticehub/lib/common"
	"github.com/noticehub/noticehub/lib/store"
)

var logger = common.GetLogger("board")

// repository mediates between the typed collections and the raw key-value
// store. Reads degrade: a missing or undecodable value yields the collection's
// zero value, never an error. Writes replace the whole collection under its
// key in a single Set.
type repository struct {
	store store.IStore
	codec codec.ICodec
	keys  Keyspace
}

// load reads and decodes the value under key into v.
// Returns false when the key is absent or the stored bytes do not decode;
// the caller falls back to the default value in both cases.
func (r *repository) load(key string, v interface{}) bool {
	raw, ok, err := r.store.Get(key)
	if err != nil || !ok {
		return false
	}

	if err := r.codec.Decode(raw, v); err != nil {
		logger.Debugf("discarding undecodable value under %s: %v", key, err)
		return false
	}
	return true
}

// save encodes v and replaces the value under key.
func (r *repository) save(key string, v interface{}) error {
	raw, err := r.codec.Encode(v)
	if err != nil {
		return NewError(ErrCInternal, fmt.Sprintf("Failed to encode %s: %v.", key, err))
	}
	if err := r.store.Set(key, raw); err != nil {
		return NewError(ErrCInternal, fmt.Sprintf("Failed to write %s: %v.", key, err))
	}
	return nil
}

// --------------------------------------------------------------------------
// Collections
// --------------------------------------------------------------------------

func (r *repository) loadUsers() []User {
	var users []User
	r.load(r.keys.Users(), &users)
	return users
}

func (r *repository) saveUsers(users []User) error {
	return r.save(r.keys.Users(), users)
}

func (r *repository) loadNotices() []Notice {
	var notices []Notice
	r.load(r.keys.Notices(), &notices)
	return notices
}

func (r *repository) saveNotices(notices []Notice) error {
	return r.save(r.keys.Notices(), notices)
}

func (r *repository) loadFavorites(userID string) []string {
	var ids []string
	r.load(r.keys.Favorites(userID), &ids)
	return ids
}

func (r *repository) saveFavorites(userID string, ids []string) error {
	return r.save(r.keys.Favorites(userID), ids)
}

// --------------------------------------------------------------------------
// Session slot
// --------------------------------------------------------------------------

func (r *repository) loadSession() (*Session, bool) {
	var s Session
	if !r.load(r.keys.Session(), &s) {
		return nil, false
	}
	return &s, true
}

func (r *repository) saveSession(s *Session) error {
	return r.save(r.keys.Session(), s)
}

func (r *repository) clearSession() error {
	if err := r.store.Delete(r.keys.Session()); err != nil {
		return NewError(ErrCInternal, fmt.Sprintf("Failed to clear session: %v.", err))
	}
	return nil
}
