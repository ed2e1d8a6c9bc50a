package board

import "errors"

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IBoard is the facade over the three notice-board collections (users,
// notices, per-user favorites) and the current-session slot.
//
// Every operation is a synchronous read-modify-write against the underlying
// store: it either completes and persists its result or fails before any
// write occurs. Operations that require authorization take the acting
// *Session explicitly; a nil session is reported as Unauthenticated.
type IBoard interface {

	// --------------------------------------------------------------------------
	// Session & Authentication
	// --------------------------------------------------------------------------

	// Register creates a new user. The email must be unique across all users,
	// compared case-insensitively. Registering does not log the user in.
	Register(name, email, password string, role Role) (*User, error)

	// Login looks up a user matching email (case-insensitive) and password
	// (exact) and writes the session snapshot on success.
	Login(email, password string) (*Session, error)

	// Logout clears the session slot unconditionally.
	Logout() error

	// CurrentSession returns the session snapshot, or false if nobody is
	// logged in. Pure read.
	CurrentSession() (*Session, bool)

	// RequireSession returns the session if present and an Unauthenticated
	// error otherwise. It never mutates; redirecting is the caller's job.
	RequireSession() (*Session, error)

	// --------------------------------------------------------------------------
	// Profile Management
	// --------------------------------------------------------------------------

	// UpdateProfile changes the acting user's name and email and refreshes
	// the session snapshot to match. The new email must not be held by any
	// other user (case-insensitive). Does not touch the password.
	UpdateProfile(s *Session, name, email string) (*Session, error)

	// ChangePassword overwrites the acting user's password after verifying
	// the old one exactly.
	ChangePassword(s *Session, oldPass, newPass string) error

	// DeleteOwnAccount removes the acting user, cascades deletion to every
	// notice they authored, and clears the session. It succeeds whenever a
	// session exists, even if the user row is already gone.
	DeleteOwnAccount(s *Session) error

	// --------------------------------------------------------------------------
	// Notice Management (teacher only)
	// --------------------------------------------------------------------------

	// AddNotice creates an unpublished notice authored by the acting teacher.
	// Title and body are trimmed. The notice is prepended: ListNotices
	// returns newest-created-first.
	AddNotice(s *Session, title, body string) (*Notice, error)

	// DeleteNotice removes the notice with the given id.
	DeleteNotice(s *Session, id string) error

	// TogglePublish flips the published flag and returns the notice in its
	// post-toggle state.
	TogglePublish(s *Session, id string) (*Notice, error)

	// ListNotices returns all notices in stored order (newest first).
	// Filtering published-only for the student view is the caller's concern.
	// Pure read.
	ListNotices() []Notice

	// --------------------------------------------------------------------------
	// Favorites
	// --------------------------------------------------------------------------

	// Favorites returns the favorite notice ids recorded for the user, or an
	// empty set if none. Pure read, never fails.
	Favorites(userID string) []string

	// ToggleFavorite adds the notice id to the user's favorite set if absent
	// and removes it if present, then returns the resulting set. The notice
	// id is not checked against the notices collection.
	ToggleFavorite(userID, noticeID string) ([]string, error)

	// --------------------------------------------------------------------------
	// User Administration (teacher only)
	// --------------------------------------------------------------------------

	// ListUsers returns all users. Records include the stored password; not
	// displaying it is the caller's responsibility. Pure read.
	ListUsers() []User

	// DeleteUser removes the user with the given id. The acting teacher
	// cannot delete themselves this way (use DeleteOwnAccount). Unlike
	// DeleteOwnAccount this does NOT cascade to the target's notices.
	DeleteUser(s *Session, targetID string) error

	// --------------------------------------------------------------------------
	// Bootstrap
	// --------------------------------------------------------------------------

	// SeedIfEmpty inserts the demo accounts when the users collection is
	// empty and the sample notice when the notices collection is empty.
	// Calling it again is a no-op.
	SeedIfEmpty() error
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is the discriminated failure result of a board operation. The message
// is human-readable and intended for direct display; the code is for the
// caller to branch on.
type Error struct {
	Code ErrCode // The error kind
	Msg  string  // The display message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Msg
}

// NewError creates a new board Error with the given code and message.
func NewError(code ErrCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// CodeOf extracts the board error code from an error.
// It returns ErrCInternal for errors that did not originate here.
func CodeOf(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCInternal
}

// --------------------------------------------------------------------------
// Error Codes
// --------------------------------------------------------------------------

type ErrCode uint64

const (
	ErrCInternal              ErrCode = iota // 0: Store or codec failure.
	ErrCInvalidArgument                      // 1: Required field missing or malformed at creation.
	ErrCUnauthenticated                      // 2: No session where one is required.
	ErrCUnauthorized                         // 3: Session present but wrong role.
	ErrCDuplicateEmail                       // 4: Email already held by another user.
	ErrCInvalidCredentials                   // 5: No user matches email and password.
	ErrCWrongPassword                        // 6: Old password does not match.
	ErrCUserNotFound                         // 7: No user with that id.
	ErrCNoticeNotFound                       // 8: No notice with that id.
	ErrCSelfDeletionForbidden                // 9: Teacher tried to admin-delete themselves.
)

func (c ErrCode) String() string {
	switch c {
	case ErrCInternal:
		return "Internal"
	case ErrCInvalidArgument:
		return "InvalidArgument"
	case ErrCUnauthenticated:
		return "Unauthenticated"
	case ErrCUnauthorized:
		return "Unauthorized"
	case ErrCDuplicateEmail:
		return "DuplicateEmail"
	case ErrCInvalidCredentials:
		return "InvalidCredentials"
	case ErrCWrongPassword:
		return "WrongPassword"
	case ErrCUserNotFound:
		return "UserNotFound"
	case ErrCNoticeNotFound:
		return "NoticeNotFound"
	case ErrCSelfDeletionForbidden:
		return "SelfDeletionForbidden"
	default:
		return "Unknown"
	}
}
