// Package api provides the HTTP API server and handlers for the Readerly application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/readerly/readerly-server/internal/config"
	"github.com/readerly/readerly-server/internal/ratelimit"
	"github.com/readerly/readerly-server/internal/service"
	"github.com/readerly/readerly-server/internal/store"
	"github.com/readerly/readerly-server/internal/validation"
)

const (
	// Discovery endpoints call external services, so they are throttled
	// per client. The burst absorbs a screenful of rapid searches.
	discoverRPS   = 5
	discoverBurst = 10
)

// Services groups the business logic services used by the API server.
type Services struct {
	Shelf    *service.ShelfService
	Feed     *service.FeedService
	Discover *service.DiscoverService
	Profile  *service.ProfileService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	services  *Services
	validator *validation.Validator
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, store *store.Store, services *Services, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(discoverRateLimit(ratelimit.New(discoverRPS, discoverBurst)))

	humaConfig := huma.DefaultConfig(cfg.Server.Name, "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:     store,
		services:  services,
		validator: validation.New(),
		router:    router,
		api:       api,
		logger:    logger,
	}

	s.registerHealthRoutes()
	s.registerProfileRoutes()
	s.registerShelfRoutes()
	s.registerFeedRoutes()
	s.registerDiscoverRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
