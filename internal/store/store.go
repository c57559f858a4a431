// Package store implements the in-memory domain store on top of Badger.
//
// The database runs in Badger's in-memory mode: all state is volatile and
// reconstructed from seed data on process start. Badger still buys us
// atomic multi-key transactions, which the shelf operations rely on.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/readerly/readerly-server/internal/domain"
)

// SearchIndexer is the interface for updating the shelf search index.
// Store uses this to keep search in sync without depending on search
// implementation details.
type SearchIndexer interface {
	IndexEntry(ctx context.Context, entry *domain.ShelfEntry) error
	DeleteEntry(ctx context.Context, bookID string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexEntry is a no-op.
func (NoopSearchIndexer) IndexEntry(context.Context, *domain.ShelfEntry) error { return nil }

// DeleteEntry is a no-op.
func (NoopSearchIndexer) DeleteEntry(context.Context, string) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Store wraps the Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Search indexer for keeping shelf search in sync with store changes.
	// Set via SetSearchIndexer after store creation to avoid circular dependencies.
	searchIndexer SearchIndexer
}

// New creates a new in-memory Store instance.
func New(logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable Badger's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("In-memory database opened")
	}

	return &Store{
		db:            db,
		logger:        logger,
		searchIndexer: NoopSearchIndexer{},
	}, nil
}

// Close gracefully closes the database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database")
	}
	return s.db.Close()
}

// SetSearchIndexer sets the search indexer for keeping search in sync.
// This is set after store creation to avoid circular dependencies
// (store needs to exist before the search index can be created).
func (s *Store) SetSearchIndexer(indexer SearchIndexer) {
	s.searchIndexer = indexer
}

// Helper methods for database operations.

// get retrieves a value by key.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		return getInTxn(txn, key, dest)
	})
}

// getInTxn retrieves and unmarshals a value inside an open transaction.
func getInTxn(txn *badger.Txn, key []byte, dest any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dest)
	})
}

// setInTxn marshals and stores a value inside an open transaction.
func setInTxn(txn *badger.Txn, key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return txn.Set(key, data)
}

// set stores a value by key.
func (s *Store) set(key []byte, value any) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return setInTxn(txn, key, value)
	})
}

// exists checks if a key exists.
func (s *Store) exists(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
