// Package service orchestrates domain operations between the HTTP layer,
// the store, and the external adapters.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/readerly/readerly-server/internal/domain"
	domainerrors "github.com/readerly/readerly-server/internal/errors"
	"github.com/readerly/readerly-server/internal/id"
	"github.com/readerly/readerly-server/internal/search"
	"github.com/readerly/readerly-server/internal/store"
)

// currentUserID identifies the single local user. There is no
// authentication; every operation acts as this user.
const currentUserID = "u1"

// ShelfService manages the user's book collection.
type ShelfService struct {
	store  *store.Store
	index  *search.ShelfIndex
	logger *slog.Logger
}

// NewShelfService creates a new shelf service.
func NewShelfService(store *store.Store, index *search.ShelfIndex, logger *slog.Logger) *ShelfService {
	return &ShelfService{
		store:  store,
		index:  index,
		logger: logger,
	}
}

// AddToShelf shelves a book and announces it on the feed. Notes are the
// reader's private words about the book and may be empty.
//
// The entry and its announcement post are committed atomically; a
// duplicate book ID fails with AlreadyExists and writes nothing.
// Returns both created records so the caller can render them without
// refetching.
func (s *ShelfService) AddToShelf(ctx context.Context, book domain.Book, status domain.ShelfStatus, notes string) (*domain.ShelfEntry, *domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if book.ID == "" {
		return nil, nil, domainerrors.Validation("book id cannot be empty")
	}
	if !status.Valid() {
		return nil, nil, domainerrors.Validation(fmt.Sprintf("invalid shelf status: %s", status))
	}

	user, err := s.store.GetUser(ctx, currentUserID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading current user: %w", err)
	}

	postID, err := id.Generate("post")
	if err != nil {
		return nil, nil, fmt.Errorf("generate post ID: %w", err)
	}

	now := time.Now()
	entry := domain.NewShelfEntry(book, status, now)
	entry.Notes = strings.TrimSpace(notes)
	post := domain.NewAddPost(postID, user, &book, status, now)

	if err := s.store.CreateEntryWithPost(ctx, &entry, &post); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Book added to shelf",
		"book_id", book.ID,
		"title", book.Title,
		"status", status,
	)

	return &entry, &post, nil
}

// UpdateStatus changes the status of a shelved book in place.
//
// Status changes are silent: no feed post, no reordering, and every
// other field of the entry is untouched. Any status can move to any
// other status.
func (s *ShelfService) UpdateStatus(ctx context.Context, bookID string, status domain.ShelfStatus) (*domain.ShelfEntry, error) {
	if !status.Valid() {
		return nil, domainerrors.Validation(fmt.Sprintf("invalid shelf status: %s", status))
	}

	entry, err := s.store.UpdateEntryStatus(ctx, bookID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Shelf status updated", "book_id", bookID, "status", status)

	return entry, nil
}

// ListShelf returns the collection, newest first.
func (s *ShelfService) ListShelf(ctx context.Context) ([]domain.ShelfEntry, error) {
	return s.store.ListEntries(ctx)
}

// GetEntry returns a single shelved book.
func (s *ShelfService) GetEntry(ctx context.Context, bookID string) (*domain.ShelfEntry, error) {
	return s.store.GetEntry(ctx, bookID)
}

// SearchShelf runs a full-text search over the collection and resolves
// hits back to their live entries.
func (s *ShelfService) SearchShelf(ctx context.Context, params search.Params) ([]domain.ShelfEntry, error) {
	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("searching shelf: %w", err)
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}

	return s.store.GetEntriesByIDs(ctx, ids)
}

// IndexedCount reports how many shelf entries the search index holds.
func (s *ShelfService) IndexedCount() (uint64, error) {
	return s.index.DocumentCount()
}

// Stats recomputes the aggregate shelf counts from the live collection.
func (s *ShelfService) Stats(ctx context.Context) (domain.UserStats, error) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}
	return domain.StatsFromEntries(entries), nil
}
