package visitors

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sudo-disha/digital-library/internal/pkg/logger"
)

const countKey = "visitor:count"

// RedisCounter is the durable backend: the count survives restarts and is
// shared between instances pointing at the same Redis.
type RedisCounter struct {
	rdb *goredis.Client
}

// NewRedisCounter connects to Redis and performs a ping health check.
func NewRedisCounter(addr, password string, db int) (*RedisCounter, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("addr", addr).Msg("Redis visitor counter connected")
	return &RedisCounter{rdb: rdb}, nil
}

// Hit increments the shared count.
func (c *RedisCounter) Hit(ctx context.Context) error {
	return c.rdb.Incr(ctx, countKey).Err()
}

// Count returns the shared count. A key that was never incremented reads
// as zero.
func (c *RedisCounter) Count(ctx context.Context) (int64, error) {
	val, err := c.rdb.Get(ctx, countKey).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}

// Close closes the underlying Redis connection.
func (c *RedisCounter) Close() error {
	return c.rdb.Close()
}
