package cache_test

import (
	"context"
	"testing"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInfoCache_NilClientIsNoop(t *testing.T) {
	c := cache.NewUserInfoCache(nil)
	ctx := context.Background()

	info, err := c.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, info)

	assert.NoError(t, c.Set(ctx, "token", &model.UserInfo{Name: "Ana"}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "token"))
}

func TestNewCache_NoHost(t *testing.T) {
	client, err := cache.NewCache(context.Background(), ":6379", "", "", 0)
	assert.NoError(t, err)
	assert.Nil(t, client)
}
