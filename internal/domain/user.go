package domain

// User represents a reader's identity and public profile.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar,omitempty"`
	// Color is the accent color clients use behind the avatar while it
	// loads. Derived from the user ID, so it is stable across restarts.
	Color string `json:"color,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// Snapshot returns an independent value copy of the user for embedding
// in feed posts. Later profile edits do not retroactively change posts.
func (u *User) Snapshot() User {
	return *u
}

// UserStats are aggregate shelf counts for profile display.
// They are always recomputed from the live collection, never stored.
type UserStats struct {
	Reading    int `json:"reading"`
	Completed  int `json:"completed"`
	WantToRead int `json:"want_to_read"`
	Owned      int `json:"owned"`
	Total      int `json:"total"`
}

// StatsFromEntries derives shelf counts from the current collection.
func StatsFromEntries(entries []ShelfEntry) UserStats {
	var s UserStats
	for i := range entries {
		switch entries[i].Status {
		case StatusReading:
			s.Reading++
		case StatusCompleted:
			s.Completed++
		case StatusWantToRead:
			s.WantToRead++
		case StatusOwned:
			s.Owned++
		}
	}
	s.Total = len(entries)
	return s
}
