package board

// --------------------------------------------------------------------------
// Notice Management (docu see interface.go)
// --------------------------------------------------------------------------

func (b *boardImpl) AddNotice(s *Session, title, body string) (n *Notice, err error) {
	defer func() { track("add_notice", err) }()

	if err := requireTeacher(s, "Only teacher can add notice."); err != nil {
		return nil, err
	}

	notice, err := NewNotice(title, body, s)
	if err != nil {
		return nil, err
	}

	// prepend: the display contract is newest-first
	notices := b.repo.loadNotices()
	notices = append([]Notice{notice}, notices...)
	if err := b.repo.saveNotices(notices); err != nil {
		return nil, err
	}

	return &notice, nil
}

func (b *boardImpl) DeleteNotice(s *Session, id string) (err error) {
	defer func() { track("delete_notice", err) }()

	if err := requireTeacher(s, "Only teacher can delete notice."); err != nil {
		return err
	}

	notices := b.repo.loadNotices()

	found := false
	kept := notices[:0]
	for _, n := range notices {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return NewError(ErrCNoticeNotFound, "Notice not found.")
	}

	return b.repo.saveNotices(kept)
}

func (b *boardImpl) TogglePublish(s *Session, id string) (n *Notice, err error) {
	defer func() { track("toggle_publish", err) }()

	if err := requireTeacher(s, "Only teacher can publish/unpublish."); err != nil {
		return nil, err
	}

	notices := b.repo.loadNotices()
	for i := range notices {
		if notices[i].ID == id {
			notices[i].Published = !notices[i].Published
			if err := b.repo.saveNotices(notices); err != nil {
				return nil, err
			}
			// post-toggle state, so the caller reports Published/Unpublished correctly
			result := notices[i]
			return &result, nil
		}
	}

	return nil, NewError(ErrCNoticeNotFound, "Notice not found.")
}

func (b *boardImpl) ListNotices() []Notice {
	return b.repo.loadNotices()
}
