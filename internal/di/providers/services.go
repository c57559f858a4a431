package providers

import (
	"github.com/samber/do/v2"

	"github.com/readerly/readerly-server/internal/catalog/googlebooks"
	"github.com/readerly/readerly-server/internal/logger"
	"github.com/readerly/readerly-server/internal/recommend"
	"github.com/readerly/readerly-server/internal/service"
)

// ProvideShelfService provides the shelf service.
func ProvideShelfService(i do.Injector) (*service.ShelfService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewShelfService(storeHandle.Store, indexHandle.ShelfIndex, log.Logger), nil
}

// ProvideFeedService provides the feed service.
func ProvideFeedService(i do.Injector) (*service.FeedService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFeedService(storeHandle.Store, log.Logger), nil
}

// ProvideDiscoverService provides the discovery service backed by the
// catalog and recommendation adapters.
func ProvideDiscoverService(i do.Injector) (*service.DiscoverService, error) {
	catalogClient := do.MustInvoke[*googlebooks.Client](i)
	recommendClient := do.MustInvoke[*recommend.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewDiscoverService(catalogClient, recommendClient, storeHandle.Store, log.Logger), nil
}

// ProvideProfileService provides the profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewProfileService(storeHandle.Store), nil
}
