// Command accessd serves the POS permission catalog, access checks and
// custom role administration.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/tillpoint/posaccess/modules/access"
	"github.com/tillpoint/posaccess/pkg/authtoken"
	"github.com/tillpoint/posaccess/pkg/config"
	"github.com/tillpoint/posaccess/pkg/customrole"
	"github.com/tillpoint/posaccess/pkg/httpserver"
	"github.com/tillpoint/posaccess/pkg/logger"
	"github.com/tillpoint/posaccess/pkg/pg"
	"github.com/tillpoint/posaccess/pkg/rbac"
	"github.com/tillpoint/posaccess/pkg/redis"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "accessd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	catalog, err := loadCatalog(ctx, cfg.CatalogFile)
	if err != nil {
		return err
	}
	evaluator := rbac.NewEvaluator(catalog)

	verifier, err := authtoken.NewVerifier(cfg.Token, catalog, log.With(logger.Component("authtoken")))
	if err != nil {
		return err
	}

	store, checks, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(log, cfg.ReadinessTimeout, checks))
	r.Mount("/v1", access.Router(access.Options{
		Evaluator:       evaluator,
		Verifier:        verifier,
		Roles:           customrole.NewService(store, evaluator, customrole.WithLogger(log.With(logger.Component("customrole")))),
		Logger:          log.With(logger.Component("access")),
		CheckRateLimit:  cfg.CheckRateLimit,
		CheckRateWindow: cfg.CheckRateWindow,
	}))

	log.InfoContext(ctx, "starting accessd",
		slog.String("store", cfg.StoreDriver),
		slog.Int("permissions", len(catalog.Permissions())),
		slog.Int("roles", len(catalog.Roles())),
	)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(access.RequestIDExtractor),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func loadCatalog(ctx context.Context, path string) (*rbac.Catalog, error) {
	if path == "" {
		return rbac.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return rbac.NewCatalog(ctx, rbac.YAMLSource(f))
}

var errUnknownStoreDriver = errors.New("unknown STORE_DRIVER")

// openStore connects the configured custom role backend and returns its
// readiness checks and a close function.
func openStore(ctx context.Context, cfg Config, log *slog.Logger) (customrole.Store, map[string]httpserver.Check, func(), error) {
	switch cfg.StoreDriver {
	case storeMemory, "":
		return customrole.NewMemoryStore(), nil, func() {}, nil

	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		checks := map[string]httpserver.Check{"redis": redis.Healthcheck(client)}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Error("close redis", logger.Error(err))
			}
		}
		return customrole.NewRedisStore(client, cfg.Redis.KeyPrefix), checks, closeFn, nil

	case storePostgres:
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg.PG, customrole.Migrations(), log.With(logger.Component("migrate"))); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		checks := map[string]httpserver.Check{"postgres": pg.Healthcheck(pool)}
		return customrole.NewPostgresStore(pool), checks, pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", errUnknownStoreDriver, cfg.StoreDriver)
	}
}
