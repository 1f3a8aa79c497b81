// Package main runs the Gantt dashboard server: the HTML dashboard, the JSON
// API and the health probes over one project store.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/web"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/storage"
	"github.com/jsamuelsen11/gantt-dashboard/internal/app"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/health"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/gantt-dashboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/gantt-dashboard/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server wires the whole graph, including the initial
	// store load under the configured load policy.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	store := do.MustInvoke[ports.ProjectStore](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()
	do.MustInvoke[ports.HealthRegistry](injector).Register(store)

	logger.Info("project store ready",
		slog.String("driver", cfg.Store.Driver),
		slog.String("path", cfg.Store.Path),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.ProjectStore, error) {
		return storage.Open(ctx, cfg.Store)
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		store := do.MustInvoke[ports.ProjectStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewProjectRegistry(ctx, store, app.LoadPolicy(cfg.Store.OnLoadError), logger, metrics)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.ReadTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DashboardHandler, error) {
		svc := do.MustInvoke[ports.DashboardService](i)
		return handlers.NewDashboardHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (*web.Handler, error) {
		svc := do.MustInvoke[ports.DashboardService](i)
		return web.NewHandler(svc, cfg.UI.Title)
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		dashH := do.MustInvoke[*handlers.DashboardHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		webH := do.MustInvoke[*web.Handler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(dashH, healthH, webH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
