package board

import "time"

// Fixed demo credentials inserted on first run.
const (
	SeedTeacherName  = "Demo Teacher"
	SeedTeacherEmail = "teacher@demo.com"
	SeedStudentName  = "Demo Student"
	SeedStudentEmail = "student@demo.com"
	SeedPassword     = "123456"

	seedNoticeTitle = "Welcome to NoticeHub"
	seedNoticeBody  = "This is a sample published notice. Teacher can publish/unpublish."
)

// SeedIfEmpty bootstraps the demo data set: two accounts (one teacher, one
// student) when the users collection is empty, and one published sample
// notice authored by the seeded teacher when the notices collection is empty.
// Each part is guarded by its collection being empty, so repeated calls are
// no-ops.
func (b *boardImpl) SeedIfEmpty() (err error) {
	defer func() { track("seed", err) }()

	users := b.repo.loadUsers()
	if len(users) == 0 {
		teacher, err := NewUser(SeedTeacherName, SeedTeacherEmail, SeedPassword, RoleTeacher)
		if err != nil {
			return err
		}
		student, err := NewUser(SeedStudentName, SeedStudentEmail, SeedPassword, RoleStudent)
		if err != nil {
			return err
		}

		users = []User{teacher, student}
		if err := b.repo.saveUsers(users); err != nil {
			return err
		}
		logger.Infof("seeded demo accounts %s / %s", SeedTeacherEmail, SeedStudentEmail)
	}

	notices := b.repo.loadNotices()
	if len(notices) == 0 {
		// author the sample notice as the first teacher on record
		var teacher *User
		for i := range users {
			if users[i].Role == RoleTeacher {
				teacher = &users[i]
				break
			}
		}

		sample := Notice{
			ID:         newID(),
			Title:      seedNoticeTitle,
			Body:       seedNoticeBody,
			Published:  true,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
			AuthorName: "Teacher",
		}
		if teacher != nil {
			sample.AuthorID = teacher.ID
			sample.AuthorName = teacher.Name
		}

		if err := b.repo.saveNotices([]Notice{sample}); err != nil {
			return err
		}
		logger.Infof("seeded sample notice %q", seedNoticeTitle)
	}

	return nil
}
