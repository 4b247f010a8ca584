package repository

import (
	"context"

	"youtube-companion/domain/model"
)

// INote owns note persistence. Lookups by id return model.ErrNotFound
// when no row matches.
type INote interface {
	ListByVideo(ctx context.Context, videoID string, filter model.NoteFilter) ([]model.Note, error)
	Get(ctx context.Context, noteID int64) (*model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, noteID int64) error
	ToggleCompleted(ctx context.Context, noteID int64) (*model.Note, error)
}
