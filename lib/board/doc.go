// Package board implements the notice-board data facade: three collections
// (users, notices, per-user favorite sets) and a current-session slot,
// persisted as serialized documents under fixed keys in a synchronous
// key-value store.
//
// The package focuses on:
//   - Role-based authorization enforced before any mutation is persisted
//   - Discriminated success/failure results with display-ready messages
//   - Whole-collection replacement on every write (no partial updates)
//   - Silent degradation to defaults on missing or corrupt stored values
//
// Key Components:
//
//   - IBoard Interface: All operations of the board. Operations requiring
//     authorization take the acting *Session as an explicit argument rather
//     than reading ambient state, which keeps them pure functions of
//     (collection state, arguments) and directly testable. RequireSession
//     is the slot read callers use to obtain that argument.
//
//   - Error System: Every expected failure is an *Error carrying an ErrCode
//     (Unauthenticated, Unauthorized, DuplicateEmail, InvalidCredentials,
//     WrongPassword, UserNotFound, NoticeNotFound, SelfDeletionForbidden,
//     InvalidArgument, Internal) and the human-readable message the UI
//     shows. Expected conditions never panic.
//
//   - Keyspace: Derives the fixed keys (users, notices, current_user,
//     fav_<userId>) with a configurable prefix.
//
//   - Seeding: SeedIfEmpty inserts the fixed demo accounts and the sample
//     notice exactly once, enabling first-run usability.
//
// Deletion Semantics:
//
//	DeleteOwnAccount (self-service) cascades: every notice authored by the
//	deleted account is removed, and the session is cleared. DeleteUser
//	(teacher administration) does NOT cascade: the target's notices remain
//	with a dangling authorId. The asymmetry is intentional and preserved.
//	Favorite sets of deleted users are never cleaned up.
//
// Concurrency:
//
//	The board is single-writer by construction. Operations are synchronous
//	read-modify-write steps with no locking and no transactions spanning
//	calls. Two processes sharing one persistent store race with
//	last-write-wins per collection; this is a documented limitation.
package board
