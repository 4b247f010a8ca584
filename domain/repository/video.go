package repository

import (
	"context"

	"youtube-companion/domain/model"
)

// IVideo is the local video mirror.
type IVideo interface {
	Upsert(ctx context.Context, video *model.Video) error
}

// IComment is the local comment mirror. Get returns model.ErrNotFound
// when the id is unknown.
type IComment interface {
	Upsert(ctx context.Context, comment *model.Comment) error
	Get(ctx context.Context, commentID string) (*model.Comment, error)
	// Delete removes the comment and any replies pointing at it.
	Delete(ctx context.Context, commentID string) error
}
