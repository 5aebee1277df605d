// Package main provides the entry point for the Northbeam Capital website
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/northbeam-capital/website/internal/config"
	"github.com/northbeam-capital/website/internal/handlers"
	"github.com/northbeam-capital/website/internal/relay"
	"github.com/northbeam-capital/website/internal/server"
	"github.com/northbeam-capital/website/internal/session"
	"github.com/northbeam-capital/website/pkg/logger"
)

func main() {
	// Load .env files if present (for local development).
	// .env.local overrides .env
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Contact relay and per-visitor state
		relay.Module,
		session.Module,

		// Pages and events
		handlers.Module,
	).Run()
}
