package config

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
)

// Config is the storefront's full runtime configuration, sourced from
// environment variables (loaded from .env for local runs).
type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	Environment     string        `envconfig:"GO_ENV" default:"development"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	Catalog CatalogConfig
	Redis   RedisConfig
}

// CatalogConfig points at the commerce API. An empty base URL selects the
// built-in fixture catalog instead.
type CatalogConfig struct {
	BaseURL        string        `envconfig:"CATALOG_BASE_URL"`
	ConsumerKey    string        `envconfig:"CATALOG_CONSUMER_KEY"`
	ConsumerSecret string        `envconfig:"CATALOG_CONSUMER_SECRET"`
	Timeout        time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL          string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

// New builds and pings a Redis client from the config.
func (r *RedisConfig) New() (*redis.Client, error) {
	opts, err := redis.ParseURL(r.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(r.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(r.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(r.DialTimeout) * time.Second

	client := redis.NewClient(opts)

	if cmd := client.Ping(context.Background()); cmd.Err() != nil {
		return nil, cmd.Err()
	}

	return client, nil
}

// Load processes the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
