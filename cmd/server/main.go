// Package main is the entry point for the Commitly web backend. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/commitly/web/internal/adapters/http"
	"github.com/commitly/web/internal/adapters/http/handlers"
	"github.com/commitly/web/internal/adapters/http/middleware"

	"github.com/commitly/web/internal/adapters/clients/acl"
	"github.com/commitly/web/internal/adapters/session"
	"github.com/commitly/web/internal/app"
	"github.com/commitly/web/internal/app/epoch"
	"github.com/commitly/web/internal/platform/config"
	"github.com/commitly/web/internal/platform/health"
	"github.com/commitly/web/internal/platform/httpclient"
	"github.com/commitly/web/internal/platform/logging"
	"github.com/commitly/web/internal/platform/telemetry"
	"github.com/commitly/web/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	backendServiceName = "commitly-api"

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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	httpClient := do.MustInvoke[*httpclient.Client](injector)
	registry.Register(httpClient)

	sessions := do.MustInvoke[ports.SessionStore](injector)
	if checker, ok := sessions.(ports.HealthChecker); ok {
		registry.Register(checker)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, backendServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BackendClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewCommitlyClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.SessionStore, error) {
		if cfg.Session.Store == "redis" {
			return session.NewRedisStore(
				cfg.Session.Redis.Address,
				cfg.Session.Redis.Password,
				cfg.Session.Redis.DB,
				session.WithPrefix(cfg.Session.Redis.KeyPrefix),
			), nil
		}
		return session.NewMemoryStore(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*epoch.Registry, error) {
		return epoch.NewRegistry(), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		backend := do.MustInvoke[ports.BackendClient](i)
		sessions := do.MustInvoke[ports.SessionStore](i)
		return app.NewAuthService(backend, sessions, cfg.Session.TTL, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActivityService, error) {
		backend := do.MustInvoke[ports.BackendClient](i)
		return app.NewActivityService(backend, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CircleService, error) {
		backend := do.MustInvoke[ports.BackendClient](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return app.NewCircleService(backend, epochs, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		backend := do.MustInvoke[ports.BackendClient](i)
		return app.NewDashboardService(backend, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RivalService, error) {
		backend := do.MustInvoke[ports.BackendClient](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return app.NewRivalService(backend, epochs, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NotificationService, error) {
		backend := do.MustInvoke[ports.BackendClient](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return app.NewNotificationService(backend, epochs, logger), nil
	})

	// HTTP handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		svc := do.MustInvoke[ports.AuthService](i)
		return handlers.NewAuthHandler(svc, cfg.Session.TTL, cfg.Session.CookieSecure), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ActivityHandler, error) {
		svc := do.MustInvoke[ports.ActivityService](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return handlers.NewActivityHandler(svc, epochs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CircleHandler, error) {
		svc := do.MustInvoke[ports.CircleService](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return handlers.NewCircleHandler(svc, epochs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DashboardHandler, error) {
		svc := do.MustInvoke[ports.DashboardService](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return handlers.NewDashboardHandler(svc, epochs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RivalHandler, error) {
		svc := do.MustInvoke[ports.RivalService](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return handlers.NewRivalHandler(svc, epochs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.NotificationHandler, error) {
		svc := do.MustInvoke[ports.NotificationService](i)
		epochs := do.MustInvoke[*epoch.Registry](i)
		return handlers.NewNotificationHandler(svc, epochs), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routerHandlers := adapthttp.RouterHandlers{
			Auth:         do.MustInvoke[*handlers.AuthHandler](i),
			Activity:     do.MustInvoke[*handlers.ActivityHandler](i),
			Circle:       do.MustInvoke[*handlers.CircleHandler](i),
			Dashboard:    do.MustInvoke[*handlers.DashboardHandler](i),
			Rival:        do.MustInvoke[*handlers.RivalHandler](i),
			Notification: do.MustInvoke[*handlers.NotificationHandler](i),
			Health:       do.MustInvoke[*handlers.HealthHandler](i),
		}
		sessions := do.MustInvoke[ports.SessionStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routerHandlers,
			middleware.Session(sessions, logger),
			middleware.Chain(
				middleware.Recovery(logger),
				middleware.RequestID(),
				middleware.CorrelationID(),
				middleware.OpenTelemetry(metrics),
				middleware.Logging(logger),
				middleware.Timeout(cfg.Server.WriteTimeout),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
