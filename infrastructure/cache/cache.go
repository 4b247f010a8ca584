package cache

import (
	"context"

	"youtube-companion/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects to Redis. An empty host returns (nil, nil) so callers
// can run without a cache.
func NewCache(ctx context.Context, addr, username, password string, db int) (*redis.Client, error) {
	if addr == "" || addr[0] == ':' {
		logger.GetLogger().Info("Redis host not configured - caching disabled")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
