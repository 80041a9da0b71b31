package redis

import (
	"context"
	"fmt"

	"secure-payment-gateway/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates a Redis client over the cache store and verifies
// connectivity. cfg.URL is a full connection string (CACHE_URL), e.g.
// redis://[:password@]host:port/db.
func NewClient(ctx context.Context, cfg config.CacheConfig, log zerolog.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing cache connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := goredis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging cache store: %w", err)
	}

	log.Info().
		Int("pool_size", opts.PoolSize).
		Msg("cache connection established")

	return client, nil
}
