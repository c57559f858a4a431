package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/readerly/readerly-server/internal/domain"
	domainerrors "github.com/readerly/readerly-server/internal/errors"
)

// CreatePost stores a new feed post with its time index in one transaction.
func (s *Store) CreatePost(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := setInTxn(txn, []byte(postPrefix+post.ID), post); err != nil {
			return fmt.Errorf("setting post: %w", err)
		}

		timeKey := []byte(postIdxTimePrefix + invertedTimestamp(post.Timestamp) + ":" + post.ID)
		if err := txn.Set(timeKey, []byte{}); err != nil {
			return fmt.Errorf("setting post time index: %w", err)
		}

		return nil
	})
}

// GetPost retrieves a single post by ID.
func (s *Store) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var post domain.Post
	err := s.get([]byte(postPrefix+id), &post)
	if err != nil {
		if domainerrors.Is(err, badger.ErrKeyNotFound) {
			return nil, domainerrors.NotFoundf("post %s not found", id)
		}
		return nil, fmt.Errorf("getting post %s: %w", id, err)
	}

	return &post, nil
}

// ListFeed returns the feed sorted newest first.
// Pass 'before' for cursor-based pagination (the Timestamp of the last
// item from the previous page); items at or after the cursor are skipped.
func (s *Store) ListFeed(ctx context.Context, limit int, before *time.Time) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts := []domain.Post{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(postIdxTimePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		seekKey := opts.Prefix
		if before != nil {
			// Inverted timestamps sort descending, so seeking at the
			// cursor lands on the cursor item or older ones.
			seekKey = []byte(postIdxTimePrefix + invertedTimestamp(*before))
		}

		for it.Seek(seekKey); it.ValidForPrefix(opts.Prefix); it.Next() {
			if limit > 0 && len(posts) >= limit {
				break
			}

			postID := extractIDFromTimeKey(string(it.Item().Key()), postIdxTimePrefix)
			if postID == "" {
				continue
			}

			var post domain.Post
			if err := getInTxn(txn, []byte(postPrefix+postID), &post); err != nil {
				continue
			}

			if before != nil && !post.Timestamp.Before(*before) {
				continue
			}
			posts = append(posts, post)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing feed: %w", err)
	}

	return posts, nil
}

// LikePost increments a post's like count by exactly one.
// Likes only ever go up; there is no unlike. The read-modify-write runs
// in a single transaction so concurrent likes cannot drop increments.
func (s *Store) LikePost(ctx context.Context, id string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var post domain.Post
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(postPrefix + id)
		if err := getInTxn(txn, key, &post); err != nil {
			if domainerrors.Is(err, badger.ErrKeyNotFound) {
				return domainerrors.NotFoundf("post %s not found", id)
			}
			return fmt.Errorf("getting post %s: %w", id, err)
		}

		post.Likes++
		return setInTxn(txn, key, &post)
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}
