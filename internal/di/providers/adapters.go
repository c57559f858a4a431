package providers

import (
	"github.com/samber/do/v2"

	"github.com/readerly/readerly-server/internal/catalog/googlebooks"
	"github.com/readerly/readerly-server/internal/config"
	"github.com/readerly/readerly-server/internal/logger"
	"github.com/readerly/readerly-server/internal/recommend"
)

// ProvideCatalogClient provides the Google Books catalog client.
func ProvideCatalogClient(i do.Injector) (*googlebooks.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return googlebooks.NewClient(googlebooks.Options{
		BaseURL:    cfg.Catalog.BaseURL,
		MaxResults: cfg.Catalog.MaxResults,
		Timeout:    cfg.Catalog.Timeout,
		Logger:     log.Logger,
	}), nil
}

// ProvideRecommendClient provides the generative recommendation client.
// A missing API key is not fatal; the client reports itself unavailable.
func ProvideRecommendClient(i do.Injector) (*recommend.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := recommend.NewClient(recommend.Options{
		APIKey:  cfg.Recommend.APIKey,
		Model:   cfg.Recommend.Model,
		Timeout: cfg.Recommend.Timeout,
		Logger:  log.Logger,
	})

	if !client.Available() {
		log.Warn("Recommendation API key not configured, feature disabled")
	}

	return client, nil
}
