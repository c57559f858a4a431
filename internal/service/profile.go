package service

import (
	"context"
	"fmt"

	"github.com/readerly/readerly-server/internal/domain"
	"github.com/readerly/readerly-server/internal/store"
)

// Profile is the current user's profile with live shelf counts.
type Profile struct {
	User  domain.User      `json:"user"`
	Stats domain.UserStats `json:"stats"`
}

// ProfileService exposes the current user's profile.
type ProfileService struct {
	store *store.Store
}

// NewProfileService creates a new profile service.
func NewProfileService(store *store.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Profile returns the current user with stats recomputed from the
// collection. Counts are always derived, never stored, so they cannot
// drift from the shelf.
func (s *ProfileService) Profile(ctx context.Context) (*Profile, error) {
	user, err := s.store.GetUser(ctx, currentUserID)
	if err != nil {
		return nil, fmt.Errorf("loading current user: %w", err)
	}

	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading collection: %w", err)
	}

	return &Profile{
		User:  *user,
		Stats: domain.StatsFromEntries(entries),
	}, nil
}
