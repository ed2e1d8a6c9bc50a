package board

// Keyspace derives the fixed store keys for the board collections. The prefix
// keeps the records of one board apart from anything else sharing the store.
type Keyspace struct {
	Prefix string
}

// DefaultKeyspace returns the keyspace used by the demo deployment.
func DefaultKeyspace() Keyspace {
	return Keyspace{Prefix: "noticehub_"}
}

// Users returns the key of the users collection.
func (k Keyspace) Users() string {
	return k.Prefix + "users"
}

// Notices returns the key of the notices collection.
func (k Keyspace) Notices() string {
	return k.Prefix + "notices"
}

// Session returns the key of the current-session slot.
func (k Keyspace) Session() string {
	return k.Prefix + "current_user"
}

// Favorites returns the per-user key of a favorite set.
func (k Keyspace) Favorites(userID string) string {
	return k.Prefix + "fav_" + userID
}
