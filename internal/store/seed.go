package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/readerly/readerly-server/internal/domain"
)

// Seed loads the demo users, shelf and feed into a fresh store.
// All state is volatile, so this runs on every start.
func (s *Store) Seed(ctx context.Context, now time.Time) error {
	user := domain.SeedUser()
	if err := s.SaveUser(ctx, &user); err != nil {
		return fmt.Errorf("seeding user: %w", err)
	}
	for _, friend := range domain.SeedFriends() {
		if err := s.SaveUser(ctx, &friend); err != nil {
			return fmt.Errorf("seeding friend %s: %w", friend.ID, err)
		}
	}

	for _, entry := range domain.SeedEntries(now) {
		err := s.db.Update(func(txn *badger.Txn) error {
			if err := setInTxn(txn, []byte(entryPrefix+entry.ID), &entry); err != nil {
				return err
			}
			timeKey := []byte(entryIdxTimePrefix + invertedTimestamp(entry.AddedAt) + ":" + entry.ID)
			return txn.Set(timeKey, []byte{})
		})
		if err != nil {
			return fmt.Errorf("seeding entry %s: %w", entry.ID, err)
		}
		if err := s.searchIndexer.IndexEntry(ctx, &entry); err != nil && s.logger != nil {
			s.logger.Warn("Failed to index seed entry", "book_id", entry.ID, "error", err)
		}
	}

	for _, post := range domain.SeedPosts(now) {
		if err := s.CreatePost(ctx, &post); err != nil {
			return fmt.Errorf("seeding post %s: %w", post.ID, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("Seed data loaded")
	}
	return nil
}
