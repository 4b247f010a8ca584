package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/audit"
)

const maxCommentResults int64 = 100

// IVideoUsecase mirrors provider videos and comments locally. Every call
// takes the caller's session; nil means API-key access.
type IVideoUsecase interface {
	FetchVideo(ctx context.Context, session *model.Session, videoID string) (*model.Video, error)
	UpdateVideo(ctx context.Context, session *model.Session, videoID string, req dto.VideoUpdateRequest) (*model.Video, error)
	FetchComments(ctx context.Context, session *model.Session, videoID string, maxResults int64) ([]model.Comment, error)
	AddComment(ctx context.Context, session *model.Session, videoID, text string) (*model.Comment, error)
	AddReply(ctx context.Context, session *model.Session, commentID, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, session *model.Session, commentID string) error
	DeleteReply(ctx context.Context, session *model.Session, commentID string) error
}

type VideoUsecase struct {
	provider repository.IYouTubeProvider
	videos   repository.IVideo
	comments repository.IComment
	events   audit.IEventLogger
}

func NewVideoUsecase(provider repository.IYouTubeProvider, videos repository.IVideo, comments repository.IComment, events audit.IEventLogger) IVideoUsecase {
	return &VideoUsecase{provider: provider, videos: videos, comments: comments, events: events}
}

func (u *VideoUsecase) FetchVideo(ctx context.Context, session *model.Session, videoID string) (*model.Video, error) {
	request := map[string]any{"videoId": videoID}
	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	video, err := yt.GetVideo(ctx, videoID)
	if err != nil {
		u.recordVideo(ctx, "fetch_details", videoID, request, nil, err)
		return nil, err
	}
	if err := u.videos.Upsert(ctx, video); err != nil {
		u.recordVideo(ctx, "fetch_details", videoID, request, nil, err)
		return nil, fmt.Errorf("store video: %w", err)
	}
	u.recordVideo(ctx, "fetch_details", videoID, request, video, nil)
	return video, nil
}

func (u *VideoUsecase) UpdateVideo(ctx context.Context, session *model.Session, videoID string, req dto.VideoUpdateRequest) (*model.Video, error) {
	if req.Title == nil && req.Description == nil {
		return nil, model.NewValidationError("Title or description is required")
	}
	action := "change_metadata"
	switch {
	case req.Description == nil:
		action = "change_title"
	case req.Title == nil:
		action = "change_description"
	}
	request := map[string]any{"videoId": videoID, "title": req.Title, "description": req.Description}

	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	current, err := yt.GetVideo(ctx, videoID)
	if err != nil {
		u.recordVideo(ctx, action, videoID, request, nil, err)
		return nil, err
	}
	merged := *current
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if _, err := yt.UpdateVideoSnippet(ctx, videoID, merged.Title, merged.Description, current.CategoryID); err != nil {
		u.recordVideo(ctx, action, videoID, request, nil, err)
		return nil, err
	}
	if err := u.videos.Upsert(ctx, &merged); err != nil {
		u.recordVideo(ctx, action, videoID, request, nil, err)
		return nil, fmt.Errorf("store video: %w", err)
	}
	u.recordVideo(ctx, action, videoID, request, merged, nil)
	return &merged, nil
}

// FetchComments returns threads with nested replies. Parents are stored
// before their replies.
func (u *VideoUsecase) FetchComments(ctx context.Context, session *model.Session, videoID string, maxResults int64) ([]model.Comment, error) {
	if maxResults <= 0 || maxResults > maxCommentResults {
		maxResults = maxCommentResults
	}
	request := map[string]any{"videoId": videoID, "maxResults": maxResults}
	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	threads, err := yt.ListComments(ctx, videoID, maxResults)
	if err != nil {
		u.recordVideo(ctx, "fetch_comments", videoID, request, nil, err)
		return nil, err
	}
	if err := u.mirrorThreads(ctx, threads); err != nil {
		u.recordVideo(ctx, "fetch_comments", videoID, request, nil, err)
		return nil, fmt.Errorf("store comments: %w", err)
	}
	u.recordVideo(ctx, "fetch_comments", videoID, request, dto.CountResponse{Count: len(threads)}, nil)
	return threads, nil
}

func (u *VideoUsecase) mirrorThreads(ctx context.Context, threads []model.Comment) error {
	for i := range threads {
		top := threads[i]
		top.Replies = nil
		if err := u.comments.Upsert(ctx, &top); err != nil {
			return err
		}
	}
	for i := range threads {
		for j := range threads[i].Replies {
			if err := u.comments.Upsert(ctx, &threads[i].Replies[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (u *VideoUsecase) AddComment(ctx context.Context, session *model.Session, videoID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.NewValidationError("Comment text is required")
	}
	request := map[string]any{"videoId": videoID, "text": text}
	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	comment, err := yt.InsertComment(ctx, videoID, text)
	if err != nil {
		u.recordComment(ctx, "add_comment", videoID, "", request, nil, err)
		return nil, err
	}
	comment.IsOwnerComment = true
	if comment.VideoID == "" {
		comment.VideoID = videoID
	}
	if err := u.comments.Upsert(ctx, comment); err != nil {
		u.recordComment(ctx, "add_comment", videoID, comment.ID, request, nil, err)
		return nil, fmt.Errorf("store comment: %w", err)
	}
	u.recordComment(ctx, "add_comment", videoID, comment.ID, request, comment, nil)
	return comment, nil
}

// AddReply requires the parent to be mirrored locally so the stored reply
// always has a stored parent.
func (u *VideoUsecase) AddReply(ctx context.Context, session *model.Session, commentID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, model.NewValidationError("Reply text is required")
	}
	request := map[string]any{"commentId": commentID, "text": text}
	parent, err := u.findComment(ctx, "add_reply", commentID, "Comment not found", request)
	if err != nil {
		return nil, err
	}
	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	reply, err := yt.InsertReply(ctx, commentID, text)
	if err != nil {
		u.recordComment(ctx, "add_reply", parent.VideoID, commentID, request, nil, err)
		return nil, err
	}
	if reply.VideoID == "" {
		reply.VideoID = parent.VideoID
	}
	parentID := commentID
	reply.ParentID = &parentID
	reply.IsOwnerComment = true
	if err := u.comments.Upsert(ctx, reply); err != nil {
		u.recordComment(ctx, "add_reply", reply.VideoID, reply.ID, request, nil, err)
		return nil, fmt.Errorf("store reply: %w", err)
	}
	u.recordComment(ctx, "add_reply", reply.VideoID, reply.ID, request, reply, nil)
	return reply, nil
}

func (u *VideoUsecase) DeleteComment(ctx context.Context, session *model.Session, commentID string) error {
	request := map[string]any{"commentId": commentID}
	target, err := u.findComment(ctx, "delete_comment", commentID, "Comment not found", request)
	if err != nil {
		return err
	}
	return u.remove(ctx, session, "delete_comment", target, request)
}

func (u *VideoUsecase) DeleteReply(ctx context.Context, session *model.Session, commentID string) error {
	request := map[string]any{"replyId": commentID}
	target, err := u.findComment(ctx, "delete_reply", commentID, "Reply not found", request)
	if err != nil {
		return err
	}
	if !target.IsReply() {
		return model.NewNotFoundError("Reply not found")
	}
	return u.remove(ctx, session, "delete_reply", target, request)
}

// remove deletes at the provider, then locally, and records the outcome
// once.
func (u *VideoUsecase) remove(ctx context.Context, session *model.Session, action string, target *model.Comment, request any) error {
	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return err
	}
	if err := yt.DeleteComment(ctx, target.ID); err != nil {
		u.recordComment(ctx, action, target.VideoID, target.ID, request, nil, err)
		return err
	}
	if err := u.comments.Delete(ctx, target.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
		u.recordComment(ctx, action, target.VideoID, target.ID, request, nil, err)
		return fmt.Errorf("remove comment: %w", err)
	}
	u.recordComment(ctx, action, target.VideoID, target.ID, request, map[string]bool{"success": true}, nil)
	return nil
}

func (u *VideoUsecase) findComment(ctx context.Context, action, commentID, notFound string, request any) (*model.Comment, error) {
	c, err := u.comments.Get(ctx, commentID)
	if err == nil {
		return c, nil
	}
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewNotFoundError(notFound)
	}
	u.recordComment(ctx, action, "", commentID, request, nil, err)
	return nil, fmt.Errorf("get comment: %w", err)
}

func (u *VideoUsecase) recordVideo(ctx context.Context, action, videoID string, request, response any, err error) {
	_ = u.events.Log(ctx, audit.Entry{
		Type: model.EventTypeVideo, Action: action, VideoID: videoID,
		Request: request, Response: response, Err: err,
	})
}

func (u *VideoUsecase) recordComment(ctx context.Context, action, videoID, commentID string, request, response any, err error) {
	_ = u.events.Log(ctx, audit.Entry{
		Type: model.EventTypeComment, Action: action, VideoID: videoID, CommentID: commentID,
		Request: request, Response: response, Err: err,
	})
}
