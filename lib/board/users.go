package board

// --------------------------------------------------------------------------
// User Administration (docu see interface.go)
// --------------------------------------------------------------------------

func (b *boardImpl) ListUsers() []User {
	return b.repo.loadUsers()
}

func (b *boardImpl) DeleteUser(s *Session, targetID string) (err error) {
	defer func() { track("delete_user", err) }()

	if err := requireTeacher(s, "Only teacher can delete users."); err != nil {
		return err
	}

	if s.ID == targetID {
		return NewError(ErrCSelfDeletionForbidden, "You can't delete yourself here. Use Delete My Account.")
	}

	users := b.repo.loadUsers()

	found := false
	kept := users[:0]
	for _, u := range users {
		if u.ID == targetID {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return NewError(ErrCUserNotFound, "User not found.")
	}

	// deliberately no cascade: the target's notices stay, with a dangling
	// authorId (asymmetric to DeleteOwnAccount)
	return b.repo.saveUsers(kept)
}
