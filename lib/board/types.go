package board

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// --------------------------------------------------------------------------
// Roles
// --------------------------------------------------------------------------

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(s)) {
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", NewError(ErrCInvalidArgument, "Role must be teacher or student.")
	}
}

// --------------------------------------------------------------------------
// Records
// --------------------------------------------------------------------------

// User is a stored account record. The password is kept in plain text: this
// is a local demo data set, not a credential store.
type User struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Notice is a stored announcement. AuthorID is a weak reference: it is set at
// creation and never reassigned, and it may dangle once the author account is
// deleted through the admin path. AuthorName is a snapshot taken at creation.
type Notice struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Published  bool   `json:"published"`
	CreatedAt  string `json:"createdAt"`
}

// Session is the snapshot of the logged-in user held in the session slot.
// It reflects the user as of login time (plus profile updates) and is not
// guaranteed to still match an existing user record.
type Session struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// --------------------------------------------------------------------------
// Constructors
// --------------------------------------------------------------------------

// NewUser validates and builds a user record with a fresh unique id.
func NewUser(name, email, password string, role Role) (User, error) {
	if name == "" || email == "" || password == "" {
		return User{}, NewError(ErrCInvalidArgument, "Name, email and password are required.")
	}
	if role != RoleTeacher && role != RoleStudent {
		return User{}, NewError(ErrCInvalidArgument, "Role must be teacher or student.")
	}

	return User{
		ID:       newID(),
		Role:     role,
		Name:     name,
		Email:    email,
		Password: password,
	}, nil
}

// NewNotice validates and builds an unpublished notice authored by the given
// session. Title and body are trimmed.
func NewNotice(title, body string, author *Session) (Notice, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" {
		return Notice{}, NewError(ErrCInvalidArgument, "Title is required.")
	}
	if author == nil {
		return Notice{}, NewError(ErrCInvalidArgument, "Author is required.")
	}

	return Notice{
		ID:         newID(),
		Title:      title,
		Body:       body,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Published:  false,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// sessionOf builds the session snapshot for a user record.
func sessionOf(u User) *Session {
	return &Session{
		ID:    u.ID,
		Role:  u.Role,
		Name:  u.Name,
		Email: u.Email,
	}
}

// newID returns an opaque unique identifier. Uniqueness is the only contract,
// not format.
func newID() string {
	return uuid.NewString()
}

// sameEmail compares two emails case-insensitively; email is the
// case-insensitive unique key of the users collection.
func sameEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}
