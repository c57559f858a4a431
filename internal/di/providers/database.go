package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/readerly/readerly-server/internal/logger"
	"github.com/readerly/readerly-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the in-memory database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.New(log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "mode", "in-memory")

	return &StoreHandle{Store: db}, nil
}

// Bootstrap marks that the volatile store has been seeded.
type Bootstrap struct {
	SeededAt time.Time
}

// ProvideBootstrap seeds the store with the demo user, shelf, and feed.
// All state is volatile, so every process start reseeds from scratch.
// Depends on the search index so seeded entries get indexed.
func ProvideBootstrap(i do.Injector) (*Bootstrap, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	_ = do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	now := time.Now()
	if err := storeHandle.Seed(context.Background(), now); err != nil {
		return nil, err
	}

	log.Info("Store seeded", "seeded_at", now)

	return &Bootstrap{SeededAt: now}, nil
}
