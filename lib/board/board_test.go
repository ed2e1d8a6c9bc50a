package board

import (
	"testing"

	"github.com/noticehub/noticehub/lib/codec"
	"github.com/noticehub/noticehub/lib/db"
	"github.com/noticehub/noticehub/lib/db/engines/birch"
	"github.com/noticehub/noticehub/lib/store"
	"github.com/noticehub/noticehub/lib/store/lstore"
)

// newTestBoard returns a fresh board over an in-memory store, plus the raw
// store for tests that need to tamper with persisted bytes.
func newTestBoard(t *testing.T) (IBoard, store.IStore) {
	t.Helper()

	s := lstore.NewLocalStore(func() db.KVDB {
		return birch.NewBirchDB()
	})
	return New(s, codec.NewJSONCodec(), DefaultKeyspace()), s
}

func mustRegister(t *testing.T, b IBoard, name, email, password string, role Role) *User {
	t.Helper()

	u, err := b.Register(name, email, password, role)
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return u
}

func mustLogin(t *testing.T, b IBoard, email, password string) *Session {
	t.Helper()

	s, err := b.Login(email, password)
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", email, err)
	}
	return s
}

func wantCode(t *testing.T, err error, code ErrCode) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := CodeOf(err); got != code {
		t.Fatalf("expected %s error, got %s (%v)", code, got, err)
	}
}

// --------------------------------------------------------------------------
// Registration
// --------------------------------------------------------------------------

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	b, _ := newTestBoard(t)

	mustRegister(t, b, "Ann", "ann@x.com", "pw", RoleStudent)

	_, err := b.Register("Other Ann", "ANN@X.COM", "pw2", RoleTeacher)
	wantCode(t, err, ErrCDuplicateEmail)

	if got := len(b.ListUsers()); got != 1 {
		t.Errorf("expected 1 user after rejected duplicate, got %d", got)
	}
}

func TestRegisterAppendsAndDoesNotLogIn(t *testing.T) {
	b, _ := newTestBoard(t)

	mustRegister(t, b, "First", "first@x.com", "pw", RoleTeacher)
	mustRegister(t, b, "Second", "second@x.com", "pw", RoleStudent)

	users := b.ListUsers()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	// most-recently-registered last
	if users[0].Email != "first@x.com" || users[1].Email != "second@x.com" {
		t.Errorf("unexpected registration order: %v, %v", users[0].Email, users[1].Email)
	}

	if _, ok := b.CurrentSession(); ok {
		t.Errorf("Register must not log the user in")
	}
}

func TestRegisterValidatesAtCreation(t *testing.T) {
	b, _ := newTestBoard(t)

	if _, err := b.Register("", "a@x.com", "pw", RoleStudent); CodeOf(err) != ErrCInvalidArgument {
		t.Errorf("expected InvalidArgument for empty name, got %v", err)
	}
	if _, err := b.Register("A", "a@x.com", "pw", Role("admin")); CodeOf(err) != ErrCInvalidArgument {
		t.Errorf("expected InvalidArgument for unknown role, got %v", err)
	}
	if got := len(b.ListUsers()); got != 0 {
		t.Errorf("rejected registrations must not persist, got %d users", got)
	}
}

// --------------------------------------------------------------------------
// Login / Logout / Session
// --------------------------------------------------------------------------

func TestLoginMatchingRules(t *testing.T) {
	b, _ := newTestBoard(t)
	u := mustRegister(t, b, "Ann", "ann@x.com", "secret", RoleStudent)

	// email case-insensitive
	s := mustLogin(t, b, "ANN@x.COM", "secret")
	if s.ID != u.ID || s.Role != RoleStudent || s.Name != "Ann" || s.Email != "ann@x.com" {
		t.Errorf("session does not reflect the user: %+v", s)
	}

	// password exact
	if _, err := b.Login("ann@x.com", "SECRET"); CodeOf(err) != ErrCInvalidCredentials {
		t.Errorf("expected InvalidCredentials for wrong-case password, got %v", err)
	}
	if _, err := b.Login("nobody@x.com", "secret"); CodeOf(err) != ErrCInvalidCredentials {
		t.Errorf("expected InvalidCredentials for unknown email, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	b, _ := newTestBoard(t)
	mustRegister(t, b, "Ann", "ann@x.com", "pw", RoleStudent)

	if _, err := b.RequireSession(); CodeOf(err) != ErrCUnauthenticated {
		t.Errorf("expected Unauthenticated before login, got %v", err)
	}

	mustLogin(t, b, "ann@x.com", "pw")

	got, err := b.RequireSession()
	if err != nil || got.Email != "ann@x.com" {
		t.Fatalf("expected session after login, got %+v err %v", got, err)
	}

	if err := b.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, ok := b.CurrentSession(); ok {
		t.Errorf("expected no session after logout")
	}

	// logout is unconditional: a second call is fine
	if err := b.Logout(); err != nil {
		t.Errorf("repeated Logout failed: %v", err)
	}
}
