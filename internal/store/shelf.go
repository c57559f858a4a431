package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/readerly/readerly-server/internal/domain"
	domainerrors "github.com/readerly/readerly-server/internal/errors"
)

// CreateEntryWithPost stores a new shelf entry together with its
// announcement post in one transaction. Either both land or neither
// does; no intermediate state is observable.
//
// Returns AlreadyExists if the book is already shelved, in which case
// nothing is written.
func (s *Store) CreateEntryWithPost(ctx context.Context, entry *domain.ShelfEntry, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		entryKey := []byte(entryPrefix + entry.ID)
		if _, err := txn.Get(entryKey); err == nil {
			return domainerrors.AlreadyExistsf("book %s is already on the shelf", entry.ID)
		} else if !domainerrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("checking entry %s: %w", entry.ID, err)
		}

		if err := setInTxn(txn, entryKey, entry); err != nil {
			return fmt.Errorf("setting entry: %w", err)
		}

		entryTimeKey := []byte(entryIdxTimePrefix + invertedTimestamp(entry.AddedAt) + ":" + entry.ID)
		if err := txn.Set(entryTimeKey, []byte{}); err != nil {
			return fmt.Errorf("setting entry time index: %w", err)
		}

		if err := setInTxn(txn, []byte(postPrefix+post.ID), post); err != nil {
			return fmt.Errorf("setting post: %w", err)
		}

		postTimeKey := []byte(postIdxTimePrefix + invertedTimestamp(post.Timestamp) + ":" + post.ID)
		if err := txn.Set(postTimeKey, []byte{}); err != nil {
			return fmt.Errorf("setting post time index: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := s.searchIndexer.IndexEntry(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("Failed to index shelf entry", "book_id", entry.ID, "error", err)
	}

	return nil
}

// GetEntry retrieves a shelf entry by book ID.
func (s *Store) GetEntry(ctx context.Context, bookID string) (*domain.ShelfEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entry domain.ShelfEntry
	err := s.get([]byte(entryPrefix+bookID), &entry)
	if err != nil {
		if domainerrors.Is(err, badger.ErrKeyNotFound) {
			return nil, domainerrors.NotFoundf("book %s is not on the shelf", bookID)
		}
		return nil, fmt.Errorf("getting entry %s: %w", bookID, err)
	}

	return &entry, nil
}

// HasEntry reports whether a book is already shelved.
func (s *Store) HasEntry(ctx context.Context, bookID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.exists([]byte(entryPrefix + bookID))
}

// UpdateEntryStatus replaces the status of an existing entry in place.
// Progress, rating, notes and AddedAt are preserved, and the entry keeps
// its position in the time index. Returns the updated entry.
func (s *Store) UpdateEntryStatus(ctx context.Context, bookID string, status domain.ShelfStatus) (*domain.ShelfEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entry domain.ShelfEntry
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(entryPrefix + bookID)
		if err := getInTxn(txn, key, &entry); err != nil {
			if domainerrors.Is(err, badger.ErrKeyNotFound) {
				return domainerrors.NotFoundf("book %s is not on the shelf", bookID)
			}
			return fmt.Errorf("getting entry %s: %w", bookID, err)
		}

		entry.Status = status
		return setInTxn(txn, key, &entry)
	})
	if err != nil {
		return nil, err
	}

	if err := s.searchIndexer.IndexEntry(ctx, &entry); err != nil && s.logger != nil {
		s.logger.Warn("Failed to reindex shelf entry", "book_id", bookID, "error", err)
	}

	return &entry, nil
}

// ListEntries returns the whole shelf sorted newest first.
func (s *Store) ListEntries(ctx context.Context) ([]domain.ShelfEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := []domain.ShelfEntry{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // Key-only index, no values to fetch
		opts.Prefix = []byte(entryIdxTimePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			bookID := extractIDFromTimeKey(string(it.Item().Key()), entryIdxTimePrefix)
			if bookID == "" {
				continue
			}

			var entry domain.ShelfEntry
			if err := getInTxn(txn, []byte(entryPrefix+bookID), &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing shelf entries: %w", err)
	}

	return entries, nil
}

// GetEntriesByIDs fetches the entries for the given book IDs, skipping
// IDs that are not shelved. Order follows the input IDs.
func (s *Store) GetEntriesByIDs(ctx context.Context, bookIDs []string) ([]domain.ShelfEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]domain.ShelfEntry, 0, len(bookIDs))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, bookID := range bookIDs {
			var entry domain.ShelfEntry
			if err := getInTxn(txn, []byte(entryPrefix+bookID), &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("getting entries by ids: %w", err)
	}

	return entries, nil
}
