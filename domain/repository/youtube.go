package repository

import (
	"context"

	"youtube-companion/domain/model"
)

// IYouTube is the provider API bound to one session (or the API key).
type IYouTube interface {
	GetVideo(ctx context.Context, videoID string) (*model.Video, error)
	UpdateVideoSnippet(ctx context.Context, videoID, title, description, categoryID string) (*model.Video, error)
	ListComments(ctx context.Context, videoID string, maxResults int64) ([]model.Comment, error)
	InsertComment(ctx context.Context, videoID, text string) (*model.Comment, error)
	InsertReply(ctx context.Context, parentID, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	MyChannelID(ctx context.Context) (string, error)
	UserInfo(ctx context.Context) (*model.UserInfo, error)
}

// IYouTubeProvider builds an IYouTube for the caller's session. A nil
// session falls back to the read-only API key.
type IYouTubeProvider interface {
	ForSession(ctx context.Context, session *model.Session) (IYouTube, error)
}
