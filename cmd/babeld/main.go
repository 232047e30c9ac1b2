// Command babeld serves translation catalogs, date formatting and time
// zone data over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/handlers"
	"github.com/dmitrymomot/babel/middlewares"
	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/config"
	"github.com/dmitrymomot/babel/pkg/db"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/logger"
	"github.com/dmitrymomot/babel/pkg/moment"
	"github.com/dmitrymomot/babel/pkg/redis"
	"github.com/dmitrymomot/babel/pkg/storage"
	"github.com/dmitrymomot/babel/pkg/tz"
)

func main() {
	cfg := config.MustLoad[settings]()
	log := logger.NewWithSentry(cfg.Log, cfg.Sentry,
		middlewares.RequestIDExtractor(),
		middlewares.LocaleExtractor(),
	).With("component", "babeld")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("babeld stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg settings, log *slog.Logger) error {
	pool, err := db.Connect(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	if err := db.Migrate(ctx, pool, catalog.Migrations, cfg.DB.MigrationsTable, log); err != nil {
		return err
	}
	if err := job.Migrate(ctx, pool, log); err != nil {
		return err
	}

	zones, err := loadZones(cfg.Catalog.TZBundle)
	if err != nil {
		return err
	}
	moment.SetDefaultLocale(cfg.Catalog.DefaultLocale)

	runOpts := []babel.RunOption{
		babel.Logger(log),
		babel.ShutdownTimeout(cfg.ShutdownTimeout),
	}
	checks := []babel.HealthOption{
		babel.WithReadinessCheck("postgres", db.Healthcheck(pool)),
	}

	// Files first, then uploaded bundles, then database overrides: later
	// sources win key by key.
	managerOpts := []catalog.Option{
		catalog.WithI18nOptions(i18nOptions(cfg.Catalog)...),
		catalog.WithLogger(log),
	}
	if cfg.Catalog.Dir != "" {
		managerOpts = append(managerOpts, catalog.WithSource(catalog.NewFSSource("files", os.DirFS(cfg.Catalog.Dir))))
	}

	var bundles *catalog.StorageSource
	if cfg.Storage.Enabled() {
		store, err := storage.New(cfg.Storage)
		if err != nil {
			return err
		}

		var storageOpts []catalog.StorageOption
		if cfg.RedisURL != "" {
			client, err := redis.Open(ctx, cfg.RedisURL, redis.WithLogger(log))
			if err != nil {
				return err
			}
			payloads := cache.NewRedis[[]byte](client, cache.Raw{}, cache.WithPrefix("babel:bundles:"))
			storageOpts = append(storageOpts, catalog.WithPayloadCache(payloads, cfg.Catalog.CacheTTL))
			checks = append(checks, babel.WithReadinessCheck("redis", redis.Healthcheck(client)))
			runOpts = append(runOpts, babel.ShutdownHook(redis.Shutdown(client)))
		}

		bundles = catalog.NewStorageSource(store, cfg.Catalog.StoragePrefix, storageOpts...)
		managerOpts = append(managerOpts, catalog.WithSource(bundles))
	}
	managerOpts = append(managerOpts, catalog.WithSource(catalog.NewPostgresSource(pool)))

	catalogs, err := catalog.NewManager(managerOpts...)
	if err != nil {
		return err
	}

	// River runs a reload job on one replica; the job broadcasts and every
	// replica's listener reloads.
	listener := catalog.NewListener(pool, catalogs, catalog.WithListenerLogger(log))
	jobs, err := job.NewManager(pool,
		job.WithLogger(log),
		job.WithScheduledTask(catalog.NewReloadTask(catalogs, cfg.Catalog.ReloadCron).BroadcastTo(pool)),
	)
	if err != nil {
		return err
	}

	overrides := catalog.NewStore(pool, catalog.EnqueueReload(jobs))

	adminOpts := []handlers.CatalogAdminOption{handlers.WithOverrides(overrides)}
	if bundles != nil {
		adminOpts = append(adminOpts, handlers.WithBundles(bundles))
	}

	checks = append(checks,
		babel.WithReadinessCheck("jobs", job.Healthcheck(jobs)),
		babel.WithReadinessCheck("catalog", func(context.Context) error {
			if catalogs.Revision() == "" {
				return errors.New("catalog not loaded")
			}
			return nil
		}),
		babel.WithReadinessInfo(func(context.Context) map[string]any {
			return map[string]any{
				"catalog_revision": catalogs.Revision(),
				"tz_version":       zones.Version(),
			}
		}),
	)

	var corsOpts []middlewares.CORSOption
	if len(cfg.CORSOrigins) > 0 {
		corsOpts = append(corsOpts, middlewares.WithAllowOrigins(cfg.CORSOrigins...))
	}

	app := babel.New(
		babel.WithCustomLogger(log),
		babel.WithMiddleware(
			middlewares.CORS(corsOpts...),
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
			middlewares.I18n(catalogs),
		),
		babel.WithHandlers(
			handlers.NewTranslate(catalogs),
			handlers.NewCatalogAdmin(catalogs, adminOpts...),
			handlers.NewMoment(zones),
			handlers.NewZones(zones),
			handlers.NewLocales(nil),
		),
		babel.WithJobs(jobs),
		babel.WithHealthChecks(checks...),
	)

	runOpts = append(runOpts,
		babel.StartupHook(catalogs.Reload),
		babel.StartupHook(listener.Start),
		babel.ShutdownHook(listener.Stop),
		babel.ShutdownHook(db.Shutdown(pool)),
	)
	return app.Run(cfg.Addr, runOpts...)
}

func i18nOptions(cfg catalogSettings) []i18n.Option {
	opts := []i18n.Option{i18n.WithDefaultLocale(cfg.DefaultLocale)}
	for _, from := range slices.Sorted(maps.Keys(cfg.Fallbacks)) {
		opts = append(opts, i18n.WithFallback(from, cfg.Fallbacks[from]))
	}
	return opts
}

func loadZones(bundle string) (*tz.Database, error) {
	if bundle == "" {
		return tz.Default()
	}
	data, err := os.ReadFile(bundle)
	if err != nil {
		return nil, fmt.Errorf("read tz bundle: %w", err)
	}
	packed, err := tz.ParseBundle(data)
	if err != nil {
		return nil, err
	}
	zones := tz.NewDatabase()
	if err := zones.Load(packed); err != nil {
		return nil, err
	}
	return zones, nil
}
