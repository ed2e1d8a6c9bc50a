package board

// --------------------------------------------------------------------------
// Favorites (docu see interface.go)
// --------------------------------------------------------------------------

func (b *boardImpl) Favorites(userID string) []string {
	return b.repo.loadFavorites(userID)
}

func (b *boardImpl) ToggleFavorite(userID, noticeID string) (result []string, err error) {
	defer func() { track("toggle_favorite", err) }()

	fav := b.repo.loadFavorites(userID)

	// symmetric difference: remove if present, add if absent
	next := make([]string, 0, len(fav)+1)
	removed := false
	for _, id := range fav {
		if id == noticeID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, noticeID)
	}

	if err := b.repo.saveFavorites(userID, next); err != nil {
		return nil, err
	}
	return next, nil
}
