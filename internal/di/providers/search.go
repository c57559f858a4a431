package providers

import (
	"github.com/samber/do/v2"

	"github.com/readerly/readerly-server/internal/logger"
	"github.com/readerly/readerly-server/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.ShelfIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve shelf index and wires it to the
// store so shelf writes are indexed automatically.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewShelfIndex(log.Logger)
	if err != nil {
		return nil, err
	}

	storeHandle.SetSearchIndexer(index)

	log.Info("Search index initialized")

	return &SearchIndexHandle{ShelfIndex: index}, nil
}
