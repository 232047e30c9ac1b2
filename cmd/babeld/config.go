package main

import (
	"time"

	"github.com/dmitrymomot/babel/pkg/db"
	"github.com/dmitrymomot/babel/pkg/logger"
	"github.com/dmitrymomot/babel/pkg/storage"
)

// settings is read from the environment and an optional .env file.
type settings struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`

	Log     logger.Config
	Sentry  logger.SentryConfig
	DB      db.Config
	Storage storage.Config

	RedisURL string `env:"REDIS_URL"`

	Catalog catalogSettings
}

type catalogSettings struct {
	// Dir holds catalog files (en.json, de.yaml, fr/errors.toml).
	Dir           string            `env:"CATALOG_DIR"`
	StoragePrefix string            `env:"CATALOG_STORAGE_PREFIX" envDefault:"catalogs"`
	CacheTTL      time.Duration     `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
	ReloadCron    string            `env:"CATALOG_RELOAD_CRON" envDefault:"*/5 * * * *"`
	DefaultLocale string            `env:"DEFAULT_LOCALE" envDefault:"en"`
	Fallbacks     map[string]string `env:"LOCALE_FALLBACKS" envKeyValSeparator:":"`
	// TZBundle is a packed zone bundle. Go's embedded tzdata is used when empty.
	TZBundle string `env:"TZ_BUNDLE"`
}
