// Package search provides full-text search over the user's shelf using Bleve.
// The index lives in memory and is rebuilt from the store on startup,
// matching the volatile lifetime of the rest of the domain state.
package search

import (
	"strings"

	"github.com/readerly/readerly-server/internal/domain"
)

// ShelfDocument is the flattened form of a shelf entry for indexing.
//
// Authors and categories are joined into single text fields so one
// match query covers them without multi-field fan-out.
type ShelfDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Description string `json:"description,omitempty"`
	Categories  string `json:"categories,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`
	AddedAt     int64  `json:"added_at"` // Unix millis
}

// DocumentFromEntry flattens a shelf entry into its searchable form.
func DocumentFromEntry(entry *domain.ShelfEntry) *ShelfDocument {
	return &ShelfDocument{
		ID:          entry.ID,
		Title:       entry.Title,
		Authors:     strings.Join(entry.DisplayAuthors(), ", "),
		Description: entry.Description,
		Categories:  strings.Join(entry.Categories, ", "),
		Notes:       entry.Notes,
		Status:      string(entry.Status),
		AddedAt:     entry.AddedAt.UnixMilli(),
	}
}

// ToMap converts the document to a map with lowercase field names.
// Bleve defaults to Go struct field names (capitalized), but the index
// mapping uses lowercase names, so we convert explicitly.
func (d *ShelfDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":       d.ID,
		"title":    d.Title,
		"authors":  d.Authors,
		"status":   d.Status,
		"added_at": d.AddedAt,
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Categories != "" {
		m["categories"] = d.Categories
	}
	if d.Notes != "" {
		m["notes"] = d.Notes
	}
	return m
}
