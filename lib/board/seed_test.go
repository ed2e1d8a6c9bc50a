package board

import "testing"

func TestSeedIfEmpty(t *testing.T) {
	b, _ := newTestBoard(t)

	if err := b.SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	users := b.ListUsers()
	if len(users) != 2 {
		t.Fatalf("expected exactly 2 seeded accounts, got %d", len(users))
	}
	if users[0].Role != RoleTeacher || users[0].Email != SeedTeacherEmail {
		t.Errorf("expected seeded teacher first, got %+v", users[0])
	}
	if users[1].Role != RoleStudent || users[1].Email != SeedStudentEmail {
		t.Errorf("expected seeded student second, got %+v", users[1])
	}

	notices := b.ListNotices()
	if len(notices) != 1 {
		t.Fatalf("expected exactly 1 seeded notice, got %d", len(notices))
	}
	if !notices[0].Published {
		t.Errorf("seeded notice must be published")
	}
	if notices[0].AuthorID != users[0].ID {
		t.Errorf("seeded notice must be authored by the seeded teacher")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	b, _ := newTestBoard(t)

	for i := 0; i < 3; i++ {
		if err := b.SeedIfEmpty(); err != nil {
			t.Fatalf("SeedIfEmpty call %d failed: %v", i, err)
		}
	}

	if got := len(b.ListUsers()); got != 2 {
		t.Errorf("expected 2 users after repeated seeding, got %d", got)
	}
	if got := len(b.ListNotices()); got != 1 {
		t.Errorf("expected 1 notice after repeated seeding, got %d", got)
	}
}

func TestSeedDoesNotTouchExistingData(t *testing.T) {
	b, _ := newTestBoard(t)
	mustRegister(t, b, "Existing", "existing@x.com", "pw", RoleTeacher)

	if err := b.SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	// users collection was non-empty: no demo accounts added
	users := b.ListUsers()
	if len(users) != 1 || users[0].Email != "existing@x.com" {
		t.Errorf("seeding must not touch a non-empty users collection: %+v", users)
	}

	// notices collection was empty: the sample notice is still seeded,
	// authored by the existing teacher
	notices := b.ListNotices()
	if len(notices) != 1 {
		t.Fatalf("expected the sample notice, got %d", len(notices))
	}
	if notices[0].AuthorID != users[0].ID {
		t.Errorf("sample notice should be authored by the first teacher on record")
	}
}

// The end-to-end flow of the demo: seed, register, log in as a student, get
// rejected as author, then publish-ready flow as the seeded teacher.
func TestEndToEndDemoFlow(t *testing.T) {
	b, _ := newTestBoard(t)

	if err := b.SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty failed: %v", err)
	}

	if _, err := b.Register("Ann", "ann@x.com", "pw", RoleStudent); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	ann := mustLogin(t, b, "ann@x.com", "pw")
	if ann.Role != RoleStudent {
		t.Errorf("expected student session, got %s", ann.Role)
	}

	if _, err := b.AddNotice(ann, "Nope", "students cannot post"); CodeOf(err) != ErrCUnauthorized {
		t.Fatalf("expected Unauthorized for student AddNotice, got %v", err)
	}

	teacher := mustLogin(t, b, SeedTeacherEmail, SeedPassword)
	if _, err := b.AddNotice(teacher, "T1", "B1"); err != nil {
		t.Fatalf("AddNotice as teacher failed: %v", err)
	}

	notices := b.ListNotices()
	if notices[0].Title != "T1" || notices[0].Published {
		t.Errorf("expected newest notice T1 unpublished, got %+v", notices[0])
	}
}
