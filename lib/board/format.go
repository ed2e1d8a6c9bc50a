package board

import "time"

// FormatDate renders a stored RFC 3339 timestamp as a local display string.
// Unparsable input falls back to the raw string; display helpers never fail.
func FormatDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}
