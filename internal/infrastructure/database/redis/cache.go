// Package redis provides the optional shared calendar cache backed by Redis.
// It implements the calendar.CachePort so multiple engine processes can reuse
// one registry fetch; the engine works unchanged without it.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/pkg/errors"
)

// Config carries Redis connection parameters.
type Config struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`

	// DialTimeout bounds connection establishment.  Zero means 5s.
	DialTimeout time.Duration `mapstructure:"dial_timeout" yaml:"dial_timeout"`

	// Enabled toggles the shared cache; when false the engine runs with the
	// in-process cache only.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Cache is the Redis-backed CachePort implementation.
type Cache struct {
	client *goredis.Client
	logger logging.Logger
}

// NewCache connects to Redis and verifies the connection with a ping.
func NewCache(ctx context.Context, cfg Config, logger logging.Logger) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, errors.New(errors.ErrCodeCacheError, "redis addr is required")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})
	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, errors.ErrCodeCacheError,
			fmt.Sprintf("redis ping failed for %s", cfg.Addr))
	}
	logger.Named("redis").Info("connected", logging.String("addr", cfg.Addr), logging.Int("db", cfg.DB))
	return &Cache{client: client, logger: logger.Named("redis")}, nil
}

// Get fetches a key.  A missing key is (nil, false, nil), not an error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, errors.ErrCodeCacheError, "redis get failed").WithDetail(key)
	}
	return val, true, nil
}

// Set stores a value with a TTL.  A non-positive TTL stores without expiry.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "redis set failed").WithDetail(key)
	}
	return nil
}

// Delete removes a key.  Deleting a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "redis delete failed").WithDetail(key)
	}
	return nil
}

// Close releases the client's connections.
func (c *Cache) Close() error {
	return c.client.Close()
}

//Personal.AI order the ending
