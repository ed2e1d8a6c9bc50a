package board

import "testing"

// A corrupt serialized collection degrades to the empty default instead of
// propagating a parse error: the store is a best-effort local cache.
func TestCorruptCollectionDegradesToEmpty(t *testing.T) {
	b, raw := newTestBoard(t)
	keys := DefaultKeyspace()

	if err := raw.Set(keys.Users(), []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := raw.Set(keys.Notices(), []byte("\xff\xfe")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got := b.ListUsers(); len(got) != 0 {
		t.Errorf("expected empty users for corrupt data, got %v", got)
	}
	if got := b.ListNotices(); len(got) != 0 {
		t.Errorf("expected empty notices for corrupt data, got %v", got)
	}

	// the board recovers by writing a fresh collection over the garbage
	if _, err := b.Register("Ann", "ann@x.com", "pw", RoleStudent); err != nil {
		t.Fatalf("Register over corrupt collection failed: %v", err)
	}
	if got := len(b.ListUsers()); got != 1 {
		t.Errorf("expected 1 user after recovery, got %d", got)
	}
}

func TestCorruptSessionTreatedAsLoggedOut(t *testing.T) {
	b, raw := newTestBoard(t)
	keys := DefaultKeyspace()

	if err := raw.Set(keys.Session(), []byte("][")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, ok := b.CurrentSession(); ok {
		t.Errorf("corrupt session slot must read as absent")
	}
	if _, err := b.RequireSession(); CodeOf(err) != ErrCUnauthenticated {
		t.Errorf("expected Unauthenticated for corrupt session, got %v", err)
	}
}

func TestCollectionsStoredUnderFixedKeys(t *testing.T) {
	b, raw := newTestBoard(t)
	keys := DefaultKeyspace()

	mustRegister(t, b, "Ann", "ann@x.com", "pw", RoleStudent)
	mustLogin(t, b, "ann@x.com", "pw")
	b.ToggleFavorite("u1", "n1")

	for _, key := range []string{keys.Users(), keys.Session(), keys.Favorites("u1")} {
		if ok, _ := raw.Has(key); !ok {
			t.Errorf("expected key %s to exist in the store", key)
		}
	}
}
