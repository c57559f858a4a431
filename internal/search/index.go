package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/readerly/readerly-server/internal/domain"
)

// ShelfIndex wraps a memory-only Bleve index with shelf operations.
//
// Thread safety: all public methods are safe for concurrent use.
type ShelfIndex struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewShelfIndex creates a fresh in-memory index.
func NewShelfIndex(logger *slog.Logger) (*ShelfIndex, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	logger.Info("Created in-memory shelf search index")

	return &ShelfIndex{
		index:  index,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *ShelfIndex) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// IndexEntry indexes a shelf entry, replacing any previous document
// with the same book ID. Implements store.SearchIndexer.
func (s *ShelfIndex) IndexEntry(_ context.Context, entry *domain.ShelfEntry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := DocumentFromEntry(entry)
	return s.index.Index(doc.ID, doc.ToMap())
}

// DeleteEntry removes a shelf entry from the index. Implements store.SearchIndexer.
func (s *ShelfIndex) DeleteEntry(_ context.Context, bookID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Delete(bookID)
}

// DocumentCount returns the number of indexed entries.
func (s *ShelfIndex) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
