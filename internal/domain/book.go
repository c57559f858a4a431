// Package domain contains the core business entities and domain logic for the Readerly reading tracker.
package domain

import "time"

// Book represents catalog-level book identity and metadata.
// A Book is immutable once obtained from a source: the shelf and feed
// copy its fields but never write them back.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
}

// UnknownAuthor is the display fallback when a source omits authorship.
const UnknownAuthor = "Unknown Author"

// DisplayAuthors returns the author list, substituting the fallback
// when the source provided none.
func (b *Book) DisplayAuthors() []string {
	if len(b.Authors) == 0 {
		return []string{UnknownAuthor}
	}
	return b.Authors
}

// Snapshot returns an independent value copy of the book.
// Slices are cloned so later mutation of the original cannot leak
// into feed posts that embedded the copy.
func (b *Book) Snapshot() Book {
	c := *b
	if b.Authors != nil {
		c.Authors = make([]string, len(b.Authors))
		copy(c.Authors, b.Authors)
	}
	if b.Categories != nil {
		c.Categories = make([]string, len(b.Categories))
		copy(c.Categories, b.Categories)
	}
	return c
}

// ShelfStatus is the user-declared reading state of a shelved book.
// Every transition between any two statuses is permitted; shelf status
// models user declaration, not an enforced workflow.
type ShelfStatus string

const (
	StatusReading    ShelfStatus = "reading"
	StatusCompleted  ShelfStatus = "completed"
	StatusWantToRead ShelfStatus = "want_to_read"
	StatusOwned      ShelfStatus = "owned"
)

// Valid checks if the status is a known shelf status.
func (s ShelfStatus) Valid() bool {
	switch s {
	case StatusReading, StatusCompleted, StatusWantToRead, StatusOwned:
		return true
	default:
		return false
	}
}

// Label returns the human-readable form used in synthesized feed content.
func (s ShelfStatus) Label() string {
	switch s {
	case StatusReading:
		return "Reading"
	case StatusCompleted:
		return "Completed"
	case StatusWantToRead:
		return "Want to Read"
	case StatusOwned:
		return "Owned"
	default:
		return string(s)
	}
}

// AllShelfStatuses lists every valid status, for validation and docs.
func AllShelfStatuses() []ShelfStatus {
	return []ShelfStatus{StatusReading, StatusCompleted, StatusWantToRead, StatusOwned}
}

// ShelfEntry is a Book augmented with per-user shelf state.
// At most one entry per Book ID exists in a collection.
type ShelfEntry struct {
	Book
	Status ShelfStatus `json:"status"`
	// Progress is a 0-100 percentage, meaningful while Status is reading.
	Progress int `json:"progress"`
	// Rating is 1-5 when set.
	Rating  *int      `json:"rating,omitempty"`
	Notes   string    `json:"notes,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// NewShelfEntry creates an entry for a freshly shelved book.
// Progress starts at zero and AddedAt is set once, never changed.
func NewShelfEntry(book Book, status ShelfStatus, now time.Time) ShelfEntry {
	return ShelfEntry{
		Book:    book.Snapshot(),
		Status:  status,
		AddedAt: now,
	}
}
