package model

import "time"

// Video is the local mirror of a provider video. It is only ever upserted.
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ThumbnailURL string     `json:"thumbnail_url"`
	ViewCount    int64      `json:"view_count"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Duration     string     `json:"duration"`
	Status       string     `json:"status"`
	CategoryID   string     `json:"category_id"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Comment is a top-level comment or, when ParentID is set, a reply.
type Comment struct {
	ID              string     `json:"id"`
	VideoID         string     `json:"video_id"`
	AuthorName      string     `json:"author_name"`
	AuthorChannelID string     `json:"author_channel_id"`
	AuthorAvatarURL string     `json:"author_avatar_url,omitempty"`
	Text            string     `json:"text"`
	LikeCount       int64      `json:"like_count"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	ParentID        *string    `json:"parent_id"`
	IsOwnerComment  bool       `json:"is_owner_comment"`
	Replies         []Comment  `json:"replies,omitempty"`
}

func (c Comment) IsReply() bool { return c.ParentID != nil && *c.ParentID != "" }
