package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/pricingdesk/pricing-console/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const defaultCacheTTL = time.Minute

type redisCache struct {
	client *redis.Client
}

// NewRedis builds a Redis-backed Cache from the config, verifying
// connectivity with a short ping.
func NewRedis(cfg config.CacheConfig) (Cache, error) {
	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisCache{client: client}, nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func (c *redisCache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, fetching directly")
	}

	value, err = fetch(ctx)
	if err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return value, nil
}

func (c *redisCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
