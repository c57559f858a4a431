package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/readerly/readerly-server/internal/api"
	"github.com/readerly/readerly-server/internal/config"
	"github.com/readerly/readerly-server/internal/logger"
	"github.com/readerly/readerly-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	// Seed before accepting requests.
	_ = do.MustInvoke[*Bootstrap](i)

	services := &api.Services{
		Shelf:    do.MustInvoke[*service.ShelfService](i),
		Feed:     do.MustInvoke[*service.FeedService](i),
		Discover: do.MustInvoke[*service.DiscoverService](i),
		Profile:  do.MustInvoke[*service.ProfileService](i),
	}

	server := api.NewServer(cfg, storeHandle.Store, services, log.Logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: httpServer}, nil
}
