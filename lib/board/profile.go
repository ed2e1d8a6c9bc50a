package board

// --------------------------------------------------------------------------
// Profile Management (docu see interface.go)
// --------------------------------------------------------------------------

func (b *boardImpl) UpdateProfile(s *Session, name, email string) (updated *Session, err error) {
	defer func() { track("update_profile", err) }()

	if s == nil {
		return nil, NewError(ErrCUnauthenticated, "Not logged in.")
	}

	users := b.repo.loadUsers()

	idx := -1
	for i, u := range users {
		if u.ID == s.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		// stale session: the account vanished after login
		return nil, NewError(ErrCUserNotFound, "User not found.")
	}

	for _, u := range users {
		if u.ID != s.ID && sameEmail(u.Email, email) {
			return nil, NewError(ErrCDuplicateEmail, "Email already taken by another user.")
		}
	}

	users[idx].Name = name
	users[idx].Email = email
	if err := b.repo.saveUsers(users); err != nil {
		return nil, err
	}

	// refresh the session snapshot to match
	refreshed := &Session{
		ID:    s.ID,
		Role:  s.Role,
		Name:  name,
		Email: email,
	}
	if err := b.repo.saveSession(refreshed); err != nil {
		return nil, err
	}

	return refreshed, nil
}

func (b *boardImpl) ChangePassword(s *Session, oldPass, newPass string) (err error) {
	defer func() { track("change_password", err) }()

	if s == nil {
		return NewError(ErrCUnauthenticated, "Not logged in.")
	}

	users := b.repo.loadUsers()

	idx := -1
	for i, u := range users {
		if u.ID == s.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return NewError(ErrCUserNotFound, "User not found.")
	}

	if users[idx].Password != oldPass {
		return NewError(ErrCWrongPassword, "Old password is wrong.")
	}

	users[idx].Password = newPass
	return b.repo.saveUsers(users)
}

func (b *boardImpl) DeleteOwnAccount(s *Session) (err error) {
	defer func() { track("delete_own_account", err) }()

	if s == nil {
		return NewError(ErrCUnauthenticated, "Not logged in.")
	}

	// remove the user row; succeeds even when it is already gone
	users := b.repo.loadUsers()
	kept := users[:0]
	for _, u := range users {
		if u.ID != s.ID {
			kept = append(kept, u)
		}
	}
	if err := b.repo.saveUsers(kept); err != nil {
		return err
	}

	// cascade: drop every notice this account authored
	notices := b.repo.loadNotices()
	keptNotices := notices[:0]
	for _, n := range notices {
		if n.AuthorID != s.ID {
			keptNotices = append(keptNotices, n)
		}
	}
	if err := b.repo.saveNotices(keptNotices); err != nil {
		return err
	}

	return b.repo.clearSession()
}
