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
	"github.com/readerly/readerly-server/internal/store"
)

// FeedService manages the social feed.
type FeedService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFeedService creates a new feed service.
func NewFeedService(store *store.Store, logger *slog.Logger) *FeedService {
	return &FeedService{
		store:  store,
		logger: logger,
	}
}

// CreatePost publishes a user-authored post.
//
// When taggedBookID resolves to a shelved book the post becomes a
// REVIEW carrying a snapshot of that book; otherwise it is a plain
// UPDATE. A tag that resolves to nothing silently degrades to UPDATE
// rather than failing; the tag is a hint, not a reference.
func (s *FeedService) CreatePost(ctx context.Context, content, taggedBookID string) (*domain.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.Validation("post content cannot be empty")
	}

	user, err := s.store.GetUser(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("loading current user: %w", err)
	}

	var book *domain.Book
	if taggedBookID != "" {
		entry, err := s.store.GetEntry(ctx, taggedBookID)
		if err == nil {
			book = &entry.Book
		} else if !domainerrors.Is(err, domainerrors.ErrNotFound) {
			return nil, fmt.Errorf("resolving tagged book %s: %w", taggedBookID, err)
		}
	}

	postID, err := id.Generate("post")
	if err != nil {
		return nil, fmt.Errorf("generate post ID: %w", err)
	}

	post := domain.NewUserPost(postID, user, content, book, time.Now())
	if err := s.store.CreatePost(ctx, &post); err != nil {
		return nil, err
	}

	s.logger.Info("Post created", "post_id", post.ID, "type", post.Type)

	return &post, nil
}

// ListFeed returns posts newest first, optionally paginated with a
// before cursor.
func (s *FeedService) ListFeed(ctx context.Context, limit int, before *time.Time) ([]domain.Post, error) {
	return s.store.ListFeed(ctx, limit, before)
}

// LikePost adds one like to a post and returns the updated post.
func (s *FeedService) LikePost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.store.LikePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Post liked", "post_id", postID, "likes", post.Likes)

	return post, nil
}
