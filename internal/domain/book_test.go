package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShelfStatus_Valid(t *testing.T) {
	for _, s := range AllShelfStatuses() {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}
	assert.False(t, ShelfStatus("archived").Valid())
	assert.False(t, ShelfStatus("").Valid())
}

func TestShelfStatus_Label(t *testing.T) {
	tests := []struct {
		status ShelfStatus
		label  string
	}{
		{StatusReading, "Reading"},
		{StatusCompleted, "Completed"},
		{StatusWantToRead, "Want to Read"},
		{StatusOwned, "Owned"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.status.Label())
	}
}

func TestBook_DisplayAuthors(t *testing.T) {
	b := Book{Title: "Anonymous Work"}
	assert.Equal(t, []string{UnknownAuthor}, b.DisplayAuthors())

	b.Authors = []string{"Frank Herbert"}
	assert.Equal(t, []string{"Frank Herbert"}, b.DisplayAuthors())
}

func TestBook_Snapshot_DoesNotAlias(t *testing.T) {
	b := Book{
		ID:         "b1",
		Title:      "Dune",
		Authors:    []string{"Frank Herbert"},
		Categories: []string{"Science Fiction"},
	}

	snap := b.Snapshot()
	b.Authors[0] = "Someone Else"
	b.Categories[0] = "Changed"

	assert.Equal(t, []string{"Frank Herbert"}, snap.Authors)
	assert.Equal(t, []string{"Science Fiction"}, snap.Categories)
}

func TestNewShelfEntry(t *testing.T) {
	now := time.Now()
	b := Book{ID: "b1", Title: "Dune", Authors: []string{"Frank Herbert"}}

	e := NewShelfEntry(b, StatusWantToRead, now)

	assert.Equal(t, "b1", e.ID)
	assert.Equal(t, StatusWantToRead, e.Status)
	assert.Equal(t, 0, e.Progress)
	assert.Nil(t, e.Rating)
	assert.Empty(t, e.Notes)
	assert.Equal(t, now, e.AddedAt)
}
