package repository

import (
	"context"
	"time"

	"youtube-companion/domain/model"
)

// ITokenStore holds the operator's OAuth credential pair.
type ITokenStore interface {
	// Load returns nil when nobody is logged in.
	Load() *model.Session
	Save(session *model.Session) error
	Clear() error
}

type IUserInfoCache interface {
	Get(ctx context.Context, key string) (*model.UserInfo, error)
	Set(ctx context.Context, key string, info *model.UserInfo, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
