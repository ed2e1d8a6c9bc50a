package board

import (
	"github.com/noticehub/noticehub/lib/codec"
	"github.com/noticehub/noticehub/lib/store"
)

type boardImpl struct {
	repo *repository
}

// New creates a board facade over the given store, using the codec to
// serialize the collections and the keyspace to derive their keys.
func New(s store.IStore, c codec.ICodec, keys Keyspace) IBoard {
	return &boardImpl{
		repo: &repository{
			store: s,
			codec: c,
			keys:  keys,
		},
	}
}

// --------------------------------------------------------------------------
// Session & Authentication (docu see interface.go)
// --------------------------------------------------------------------------

func (b *boardImpl) Register(name, email, password string, role Role) (u *User, err error) {
	defer func() { track("register", err) }()

	users := b.repo.loadUsers()
	for _, existing := range users {
		if sameEmail(existing.Email, email) {
			return nil, NewError(ErrCDuplicateEmail, "Email already exists. Try login.")
		}
	}

	user, err := NewUser(name, email, password, role)
	if err != nil {
		return nil, err
	}

	// most-recently-registered last
	users = append(users, user)
	if err := b.repo.saveUsers(users); err != nil {
		return nil, err
	}

	return &user, nil
}

func (b *boardImpl) Login(email, password string) (s *Session, err error) {
	defer func() { track("login", err) }()

	users := b.repo.loadUsers()
	for _, u := range users {
		// email case-insensitive, password exact
		if sameEmail(u.Email, email) && u.Password == password {
			session := sessionOf(u)
			if err := b.repo.saveSession(session); err != nil {
				return nil, err
			}
			return session, nil
		}
	}

	return nil, NewError(ErrCInvalidCredentials, "Wrong email or password.")
}

func (b *boardImpl) Logout() (err error) {
	defer func() { track("logout", err) }()

	return b.repo.clearSession()
}

func (b *boardImpl) CurrentSession() (*Session, bool) {
	return b.repo.loadSession()
}

func (b *boardImpl) RequireSession() (*Session, error) {
	s, ok := b.repo.loadSession()
	if !ok {
		return nil, NewError(ErrCUnauthenticated, "Not logged in.")
	}
	return s, nil
}

// requireTeacher reports Unauthenticated for a missing session and
// Unauthorized for a non-teacher one.
func requireTeacher(s *Session, msg string) error {
	if s == nil {
		return NewError(ErrCUnauthenticated, "Not logged in.")
	}
	if s.Role != RoleTeacher {
		return NewError(ErrCUnauthorized, msg)
	}
	return nil
}
