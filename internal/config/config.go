// Package config provides the registration service configuration: a YAML
// file with .env loading and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
)

const (
	defaultServerPort    = 8060
	defaultServerTimeout = 30
	defaultCatalogPath   = "Capstones_List_of_Topics.xlsx"
	defaultStorePath     = "supervisors.txt"
	defaultRedisAddress  = "localhost:6379"
)

type Config struct {
	Debug   bool          `env:"APP_DEBUG" yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Store   StoreConfig   `yaml:"store"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     logger.Config `yaml:"log"`
}

type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"  yaml:"host"`
	Port         int           `env:"SERVER_PORT"  yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `env:"CORS_ORIGINS" yaml:"cors_origins"`
}

// CatalogConfig locates the topic catalog spreadsheet.
type CatalogConfig struct {
	Path string `env:"CATALOG_PATH"  yaml:"path"`
	// Watch enables hot reload of the catalog when the spreadsheet changes.
	Watch bool `env:"CATALOG_WATCH" yaml:"watch"`
}

// StoreConfig locates the supervisor record store file.
type StoreConfig struct {
	Path string `env:"STORE_PATH" yaml:"path"`
}

// RedisConfig holds Redis connection configuration for event publishing.
type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"        yaml:"address"`
	Password string `env:"REDIS_PASSWORD"       yaml:"password"`
	DB       int    `env:"REDIS_DB"             yaml:"db"`
	Enabled  bool   `env:"REDIS_EVENTS_ENABLED" yaml:"enabled"` // Feature flag for event publishing
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port is required and must be positive")
	}
	if c.Catalog.Path == "" {
		return errors.New("catalog.path is required")
	}
	if c.Store.Path == "" {
		return errors.New("store.path is required")
	}
	return nil
}

func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults(path, setDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultServerTimeout * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultServerTimeout * time.Second
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{
			"http://localhost:3000", // Registration form frontend
		}
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = defaultCatalogPath
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = defaultRedisAddress
	}
	cfg.Log.SetDefaults()
	// Note: cfg.Redis.Enabled defaults to false (feature flag)
}
