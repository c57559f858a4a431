package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/readerly/readerly-server/internal/domain"
	domainerrors "github.com/readerly/readerly-server/internal/errors"
)

// SaveUser stores or replaces a user profile.
func (s *Store) SaveUser(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.set([]byte(userPrefix+user.ID), user)
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user domain.User
	err := s.get([]byte(userPrefix+id), &user)
	if err != nil {
		if domainerrors.Is(err, badger.ErrKeyNotFound) {
			return nil, domainerrors.NotFoundf("user %s not found", id)
		}
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}

	return &user, nil
}
