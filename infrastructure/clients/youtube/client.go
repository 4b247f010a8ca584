package youtube

import (
	"context"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"

	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultMaxComments int64 = 100
	providerMaxResults int64 = 100
)

var videoParts = []string{"snippet", "statistics", "contentDetails", "status"}

// Client represents YouTube API client bound to one credential.
type Client struct {
	service   *youtube.Service
	userinfo  *oauth2api.Service
	channelID string
}

func newClient(service *youtube.Service, userinfo *oauth2api.Service, channelID string) *Client {
	return &Client{service: service, userinfo: userinfo, channelID: channelID}
}

var _ repository.IYouTube = (*Client)(nil)

// GetVideo retrieves details for a specific video
func (c *Client) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	response, err := c.service.Videos.List(videoParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, model.ErrVideoNotFound
	}
	return convertToVideo(response.Items[0]), nil
}

// UpdateVideoSnippet writes title, description and category. The provider
// clears any snippet field that is omitted, so callers pass all three.
func (c *Client) UpdateVideoSnippet(ctx context.Context, videoID, title, description, categoryID string) (*model.Video, error) {
	video := &youtube.Video{
		Id: videoID,
		Snippet: &youtube.VideoSnippet{
			Title:       title,
			Description: description,
			CategoryId:  categoryID,
		},
	}
	updated, err := c.service.Videos.Update([]string{"snippet"}, video).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return convertToVideo(updated), nil
}

// ListComments returns top-level comments, newest first, with their replies.
func (c *Client) ListComments(ctx context.Context, videoID string, maxResults int64) ([]model.Comment, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxComments
	}
	if maxResults > providerMaxResults {
		maxResults = providerMaxResults
	}
	response, err := c.service.CommentThreads.List([]string{"snippet", "replies"}).
		VideoId(videoID).
		Order("time").
		TextFormat("plainText").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	comments := make([]model.Comment, 0, len(response.Items))
	for _, thread := range response.Items {
		if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
			continue
		}
		comments = append(comments, c.convertThread(thread))
	}
	return comments, nil
}

func (c *Client) InsertComment(ctx context.Context, videoID, text string) (*model.Comment, error) {
	thread := &youtube.CommentThread{
		Snippet: &youtube.CommentThreadSnippet{
			VideoId: videoID,
			TopLevelComment: &youtube.Comment{
				Snippet: &youtube.CommentSnippet{TextOriginal: text},
			},
		},
	}
	created, err := c.service.CommentThreads.Insert([]string{"snippet"}, thread).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	if created.Snippet == nil || created.Snippet.TopLevelComment == nil {
		return nil, fmt.Errorf("failed to add comment: empty response")
	}
	comment := c.convertComment(created.Snippet.TopLevelComment, created.Snippet.VideoId)
	if comment.VideoID == "" {
		comment.VideoID = videoID
	}
	comment.IsOwnerComment = true
	return &comment, nil
}

// InsertReply posts a reply. The returned VideoID may be empty because the
// provider does not always echo it for replies.
func (c *Client) InsertReply(ctx context.Context, parentID, text string) (*model.Comment, error) {
	reply := &youtube.Comment{
		Snippet: &youtube.CommentSnippet{ParentId: parentID, TextOriginal: text},
	}
	created, err := c.service.Comments.Insert([]string{"snippet"}, reply).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}
	comment := c.convertComment(created, "")
	comment.ParentID = &parentID
	comment.IsOwnerComment = true
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	if err := c.service.Comments.Delete(commentID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// MyChannelID resolves the channel owned by the authenticated user.
func (c *Client) MyChannelID(ctx context.Context) (string, error) {
	response, err := c.service.Channels.List([]string{"id"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get my channel: %w", err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("no channel found for authenticated user")
	}
	return response.Items[0].Id, nil
}

func (c *Client) UserInfo(ctx context.Context) (*model.UserInfo, error) {
	if c.userinfo == nil {
		return nil, model.NewUnauthenticatedError("Not logged in")
	}
	me, err := c.userinfo.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	info := &model.UserInfo{Name: me.Name, AvatarURL: me.Picture, Email: me.Email}
	if channelID, err := c.MyChannelID(ctx); err == nil {
		info.ChannelID = channelID
	}
	return info, nil
}

// convertToVideo converts YouTube API video to our model
func convertToVideo(video *youtube.Video) *model.Video {
	v := &model.Video{ID: video.Id}
	if s := video.Snippet; s != nil {
		v.Title = s.Title
		v.Description = s.Description
		v.CategoryID = s.CategoryId
		v.PublishedAt = parseTime(s.PublishedAt)
		v.ThumbnailURL = bestThumbnail(s.Thumbnails)
	}
	if video.Statistics != nil {
		v.ViewCount = int64(video.Statistics.ViewCount)
		v.LikeCount = int64(video.Statistics.LikeCount)
		v.CommentCount = int64(video.Statistics.CommentCount)
	}
	if video.ContentDetails != nil {
		v.Duration = video.ContentDetails.Duration
	}
	if video.Status != nil {
		v.Status = video.Status.PrivacyStatus
	}
	return v
}

func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

func (c *Client) convertThread(thread *youtube.CommentThread) model.Comment {
	top := c.convertComment(thread.Snippet.TopLevelComment, thread.Snippet.VideoId)
	if thread.Replies != nil {
		for _, r := range thread.Replies.Comments {
			reply := c.convertComment(r, top.VideoID)
			parentID := top.ID
			reply.ParentID = &parentID
			top.Replies = append(top.Replies, reply)
		}
	}
	return top
}

func (c *Client) convertComment(comment *youtube.Comment, videoID string) model.Comment {
	out := model.Comment{ID: comment.Id, VideoID: videoID}
	s := comment.Snippet
	if s == nil {
		return out
	}
	if out.VideoID == "" {
		out.VideoID = s.VideoId
	}
	out.AuthorName = s.AuthorDisplayName
	out.AuthorAvatarURL = s.AuthorProfileImageUrl
	if s.AuthorChannelId != nil {
		out.AuthorChannelID = s.AuthorChannelId.Value
	}
	out.Text = s.TextDisplay
	if out.Text == "" {
		out.Text = s.TextOriginal
	}
	out.LikeCount = s.LikeCount
	out.PublishedAt = parseTime(s.PublishedAt)
	if s.ParentId != "" {
		parentID := s.ParentId
		out.ParentID = &parentID
	}
	out.IsOwnerComment = c.channelID != "" && out.AuthorChannelID == c.channelID
	return out
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}
