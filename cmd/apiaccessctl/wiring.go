package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/api-access-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/api-access-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/api-access-service/internal/app"
	"github.com/jsamuelsen11/api-access-service/internal/domain/apiaccess"
	"github.com/jsamuelsen11/api-access-service/internal/platform/config"
	"github.com/jsamuelsen11/api-access-service/internal/platform/health"
	"github.com/jsamuelsen11/api-access-service/internal/platform/logging"
	"github.com/jsamuelsen11/api-access-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/api-access-service/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

var errUnhealthy = errors.New("one or more components are unhealthy")

// storeBackend is what every store driver provides.
type storeBackend interface {
	ports.APIAccessStore
	ports.HealthChecker
	Close() error
}

// runtime is the resolved dependency graph for one command.
type runtime struct {
	service ports.APIAccessService
	health  *health.Registry
	logger  *slog.Logger
	closers []func(ctx context.Context) error
}

// Close releases resources in reverse order of acquisition.
func (r *runtime) Close(ctx context.Context) error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// runtimeBuilder creates the runtime for a command. Logs go to logOut.
type runtimeBuilder func(ctx context.Context, opts rootOptions, logOut io.Writer) (*runtime, error)

// buildRuntime loads configuration and wires the production graph.
func buildRuntime(ctx context.Context, opts rootOptions, logOut io.Writer) (*runtime, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	rt := &runtime{logger: logger}
	rt.closers = append(rt.closers, func(context.Context) error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		return otel.Shutdown(shutdownCtx)
	})

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	store, err := do.Invoke[storeBackend](injector)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	rt.closers = append(rt.closers, func(context.Context) error { return store.Close() })

	svc, err := do.Invoke[ports.APIAccessService](injector)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, fmt.Errorf("resolving service: %w", err)
	}
	rt.service = svc

	// Register health checkers after the graph is wired.
	rt.health = do.MustInvoke[*health.Registry](injector)
	rt.health.Register(store)

	logger.DebugContext(ctx, "runtime ready",
		slog.String("profile", opts.profile),
		slog.String("store", store.Name()),
	)
	return rt, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (storeBackend, error) {
		return openStore(cfg.Store)
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.APIAccessService, error) {
		store := do.MustInvoke[storeBackend](i)

		var recorder ports.CommandRecorder
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			recorder = metrics
		}

		return app.NewAPIAccessService(store, limitsFrom(cfg.APIAccess.Limits), recorder, logger), nil
	})
}

// openStore opens the configured driver. SQLite databases are migrated to
// the latest schema before use.
func openStore(cfg config.StoreConfig) (storeBackend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := s.ApplyMigrations(); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func limitsFrom(l config.LimitsConfig) apiaccess.Limits {
	return apiaccess.Limits{
		ClientNameMax:  l.ClientNameMax,
		APIClientIDMax: l.APIClientIDMax,
		DescriptionMax: l.DescriptionMax,
	}
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
