// Package app contains the application setup for the grocery list service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abgdnv/grocerylist/internal/config"
	"github.com/abgdnv/grocerylist/internal/metrics"
	"github.com/abgdnv/grocerylist/internal/service"
	"github.com/abgdnv/grocerylist/internal/store"
	"github.com/abgdnv/grocerylist/internal/transport/rest"
	"github.com/abgdnv/grocerylist/pkg/server"
)

type Dependencies struct {
	ItemService service.ItemService
	Logger      *slog.Logger
}

// SetupDependencies builds the service graph on top of the given item store.
func SetupDependencies(itemStore store.ItemStore, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		ItemService: service.NewService(itemStore),
		Logger:      logger,
	}
}

// SetupHttpHandler initializes the router and routes for the grocery list service.
// Also used by tests to exercise the full HTTP surface in-process.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	mux.Use(metrics.Middleware)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the grocery list service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	itemHandler := rest.NewHandler(deps.ItemService, deps.Logger)
	itemHandler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
}

// SetupHttpServer creates and configures the HTTP server for the grocery list service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
