package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ServiceName     string        `env:"SERVICE_NAME,     default=transportista-service"`
	StorageDriver   string        `env:"STORAGE_DRIVER,   default=memory"`
	StrictStatus    bool          `env:"STRICT_STATUS,    default=false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Events EventsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=transportista"`
}

// RedisConfig enables the tracking cache and the dedup store when Addr is set.
type RedisConfig struct {
	Addr             string        `env:"REDIS_ADDR"`
	Password         string        `env:"REDIS_PASSWORD"`
	DB               int           `env:"REDIS_DB,            default=0"`
	PoolSize         int           `env:"REDIS_POOL_SIZE,     default=10"`
	DialTimeout      time.Duration `env:"REDIS_DIAL_TIMEOUT,  default=5s"`
	ReadTimeout      time.Duration `env:"REDIS_READ_TIMEOUT,  default=3s"`
	WriteTimeout     time.Duration `env:"REDIS_WRITE_TIMEOUT, default=3s"`
	TrackingCacheTTL time.Duration `env:"TRACKING_CACHE_TTL,  default=5m"`
	EventDedupTTL    time.Duration `env:"EVENT_DEDUP_TTL,     default=1h"`
}

// KafkaConfig enables status change publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS"`
	StatusTopic string   `env:"KAFKA_STATUS_TOPIC, default=shipment.status_changed"`
}

type EventsConfig struct {
	Workers int `env:"EVENT_WORKERS, default=8"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from the given lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageMongo:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.Events.Workers < 0 {
		return fmt.Errorf("config: EVENT_WORKERS must not be negative, got %d", c.Events.Workers)
	}
	return nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
