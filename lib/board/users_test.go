package board

import "testing"

func TestDeleteUserAuthorization(t *testing.T) {
	b, _ := newTestBoard(t)
	mustRegister(t, b, "T", "t@x.com", "pw", RoleTeacher)
	mustRegister(t, b, "Ann", "ann@x.com", "pw", RoleStudent)

	err := b.DeleteUser(nil, "some-id")
	wantCode(t, err, ErrCUnauthenticated)

	student := mustLogin(t, b, "ann@x.com", "pw")
	err = b.DeleteUser(student, "some-id")
	wantCode(t, err, ErrCUnauthorized)
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	b, _ := newTestBoard(t)
	mustRegister(t, b, "T", "t@x.com", "pw", RoleTeacher)
	s := mustLogin(t, b, "t@x.com", "pw")

	err := b.DeleteUser(s, s.ID)
	wantCode(t, err, ErrCSelfDeletionForbidden)

	if got := len(b.ListUsers()); got != 1 {
		t.Errorf("expected user to survive self-deletion attempt, got %d users", got)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	b, _ := newTestBoard(t)
	mustRegister(t, b, "T", "t@x.com", "pw", RoleTeacher)
	s := mustLogin(t, b, "t@x.com", "pw")

	err := b.DeleteUser(s, "no-such-id")
	wantCode(t, err, ErrCUserNotFound)
}

// The admin path removes the user but not their notices; the self-service
// path cascades. The asymmetry is intentional and must hold.
func TestDeletionCascadeAsymmetry(t *testing.T) {
	// Admin path: notices survive with a dangling authorId
	b, _ := newTestBoard(t)
	author := mustRegister(t, b, "Author", "author@x.com", "pw", RoleTeacher)
	mustRegister(t, b, "Admin", "admin@x.com", "pw", RoleTeacher)

	as := mustLogin(t, b, "author@x.com", "pw")
	if _, err := b.AddNotice(as, "Orphan", "survives admin delete"); err != nil {
		t.Fatalf("AddNotice failed: %v", err)
	}

	admin := mustLogin(t, b, "admin@x.com", "pw")
	if err := b.DeleteUser(admin, author.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	notices := b.ListNotices()
	if len(notices) != 1 {
		t.Fatalf("admin delete must NOT cascade, got %d notices", len(notices))
	}
	if notices[0].AuthorID != author.ID {
		t.Errorf("expected notice to keep its (dangling) authorId")
	}

	// Self-service path: same setup, cascade removes the notices
	b2, _ := newTestBoard(t)
	mustRegister(t, b2, "Author", "author@x.com", "pw", RoleTeacher)
	as2 := mustLogin(t, b2, "author@x.com", "pw")
	if _, err := b2.AddNotice(as2, "Gone", "removed by self delete"); err != nil {
		t.Fatalf("AddNotice failed: %v", err)
	}

	if err := b2.DeleteOwnAccount(as2); err != nil {
		t.Fatalf("DeleteOwnAccount failed: %v", err)
	}
	if got := len(b2.ListNotices()); got != 0 {
		t.Errorf("self delete must cascade, got %d notices", got)
	}
}

func TestListUsersIncludesStoredRecords(t *testing.T) {
	b, _ := newTestBoard(t)
	mustRegister(t, b, "Ann", "ann@x.com", "pw", RoleStudent)

	users := b.ListUsers()
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	// the record is returned as stored, password included; masking is the
	// caller's responsibility
	if users[0].Password != "pw" {
		t.Errorf("expected raw stored record, got %+v", users[0])
	}
}
