package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/northbeam-capital/website/internal/assets"
	"github.com/northbeam-capital/website/internal/config"
	"github.com/northbeam-capital/website/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
}

// NewRouter creates the chi router with the shared middleware stack, static
// files and metrics. Page routes are registered by the handlers module.
func NewRouter(p RouterParams) (*chi.Mux, error) {
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		// Request logging (skip health and metrics scrapes)
		middleware.Maybe(RequestLogger(log), func(req *http.Request) bool {
			return req.URL.Path != "/health" && req.URL.Path != "/metrics"
		}),
		middleware.Recoverer,
		middleware.StripSlashes,
	)

	static, err := assets.Static()
	if err != nil {
		return nil, fmt.Errorf("access static files: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}

// RequestLogger is chi's request logger writing through the application's
// slog handler
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(log.Handler(), slog.LevelInfo),
		NoColor: true,
	})
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
