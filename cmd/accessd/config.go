package main

import (
	"time"

	"github.com/tillpoint/posaccess/pkg/authtoken"
	"github.com/tillpoint/posaccess/pkg/httpserver"
	"github.com/tillpoint/posaccess/pkg/pg"
	"github.com/tillpoint/posaccess/pkg/redis"
)

const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
)

type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"accessd"`
	LogLevel    string `env:"LOG_LEVEL"`

	// CatalogFile points at a YAML catalog. Empty means the builtin POS catalog.
	CatalogFile string `env:"CATALOG_FILE"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"3s"`
	CheckRateLimit   int           `env:"CHECK_RATE_LIMIT" envDefault:"120"`
	CheckRateWindow  time.Duration `env:"CHECK_RATE_WINDOW" envDefault:"1m"`

	HTTP  httpserver.Config
	Token authtoken.Config
	Redis redis.Config
	PG    pg.Config
}
