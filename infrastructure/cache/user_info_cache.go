package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"

	"github.com/redis/go-redis/v9"
)

const userInfoKeyPrefix = "youtube-companion:userinfo:"

// UserInfoCache stores profile lookups keyed by access token. A nil client
// turns every Get into a miss and every write into a no-op.
type UserInfoCache struct {
	RedisClient *redis.Client
}

func NewUserInfoCache(redisClient *redis.Client) repository.IUserInfoCache {
	return &UserInfoCache{RedisClient: redisClient}
}

// Get returns (nil, nil) on a miss.
func (c *UserInfoCache) Get(ctx context.Context, key string) (*model.UserInfo, error) {
	if c.RedisClient == nil || key == "" {
		return nil, nil
	}
	raw, err := c.RedisClient.Get(ctx, userInfoKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user info cache: %w", err)
	}
	var info model.UserInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode user info cache: %w", err)
	}
	return &info, nil
}

func (c *UserInfoCache) Set(ctx context.Context, key string, info *model.UserInfo, ttl time.Duration) error {
	if c.RedisClient == nil || key == "" || info == nil {
		return nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return c.RedisClient.Set(ctx, userInfoKeyPrefix+key, raw, ttl).Err()
}

func (c *UserInfoCache) Delete(ctx context.Context, key string) error {
	if c.RedisClient == nil || key == "" {
		return nil
	}
	return c.RedisClient.Del(ctx, userInfoKeyPrefix+key).Err()
}
