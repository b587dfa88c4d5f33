// Package redis holds the Redis-backed adapters: a read-through cache for
// dictionary lookups and a publisher for extraction notifications.
package redis

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/deeplisten-backend/internal/config"
)

// NewClient creates a go-redis client and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	log.Info("redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))
	return rdb, nil
}
