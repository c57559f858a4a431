// Package di provides dependency injection configuration for the Readerly server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/readerly/readerly-server/internal/catalog/googlebooks"
	"github.com/readerly/readerly-server/internal/config"
	"github.com/readerly/readerly-server/internal/di/providers"
	"github.com/readerly/readerly-server/internal/logger"
	"github.com/readerly/readerly-server/internal/recommend"
	"github.com/readerly/readerly-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideBootstrap)

	// External adapters
	do.Provide(injector, providers.ProvideCatalogClient)
	do.Provide(injector, providers.ProvideRecommendClient)

	// Business services
	do.Provide(injector, providers.ProvideShelfService)
	do.Provide(injector, providers.ProvideFeedService)
	do.Provide(injector, providers.ProvideDiscoverService)
	do.Provide(injector, providers.ProvideProfileService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*providers.Bootstrap](injector)
	_ = do.MustInvoke[*googlebooks.Client](injector)
	_ = do.MustInvoke[*recommend.Client](injector)

	// Business services
	_ = do.MustInvoke[*service.ShelfService](injector)
	_ = do.MustInvoke[*service.FeedService](injector)
	_ = do.MustInvoke[*service.DiscoverService](injector)
	_ = do.MustInvoke[*service.ProfileService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
