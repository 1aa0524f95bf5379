package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"TTGear/internal/catalog"
	"TTGear/internal/config"
	"TTGear/internal/equipment"
	"TTGear/pkg/kit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load:", err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(cfg.Service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("init store failed", zap.Error(err), zap.String("backend", string(cfg.Catalog.Backend)))
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := catalog.NewHandler(&catalog.Server{Store: store, Log: log}, catalog.HTTPDeps{
		Log:             log,
		Service:         cfg.Service,
		Registry:        reg,
		MetricsEnabled:  cfg.Metrics.Enabled,
		MetricsToken:    cfg.Metrics.Token,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	g, ctx := errgroup.WithContext(ctx)
	kit.RunHTTPServer(ctx, g, kit.NewHTTPServer(":"+cfg.Port, h), log, cfg.ShutdownTimeout)

	if err := g.Wait(); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
	log.Info("stopped")
}

func newStore(ctx context.Context, cfg config.Config, log *zap.Logger) (catalog.Store, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Backend {
	case config.BackendMemory:
		d, err := loadDataset(cfg.Catalog.SeedPath)
		if err != nil {
			return nil, noop, err
		}
		s, err := catalog.NewMemStore(d, catalog.WithLatency(cfg.Catalog.Latency))
		if err != nil {
			return nil, noop, err
		}
		log.Info("catalog loaded",
			zap.Int("rubbers", len(d.Rubbers)),
			zap.Int("blades", len(d.Blades)),
			zap.Duration("latency", cfg.Catalog.Latency),
		)
		return s, noop, nil

	case config.BackendPostgres:
		db, err := kit.OpenPostgres(ctx, kit.PostgresOptions{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}, log)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				log.Error("postgres close", zap.Error(err))
			}
		}
		return withCache(catalog.NewPostgresStore(db), cfg.Catalog.CacheTTL), closeDB, nil

	case config.BackendRemote:
		log.Info("catalog proxies remote source", zap.String("url", cfg.Catalog.RemoteURL))
		return withCache(catalog.NewRemoteStore(cfg.Catalog.RemoteURL), cfg.Catalog.CacheTTL), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}

// withCache puts a read-through cache in front of s unless ttl disables it.
func withCache(s catalog.Store, ttl time.Duration) catalog.Store {
	if ttl <= 0 {
		return s
	}
	return catalog.NewCachedStore(s, ttl)
}

func loadDataset(path string) (equipment.Dataset, error) {
	if path == "" {
		return equipment.Seed()
	}
	return equipment.LoadFile(path)
}
