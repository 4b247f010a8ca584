package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

type VideoRepository struct{ db *sql.DB }

func NewVideoRepository(db *sql.DB) repository.IVideo {
	return &VideoRepository{db: db}
}

// Upsert inserts the video or refreshes every mirrored column.
func (r *VideoRepository) Upsert(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now().UTC()
	q := `INSERT INTO videos (id, title, description, thumbnail_url, view_count, like_count, comment_count, published_at, duration, status, category_id, updated_at)
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
          ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description, thumbnail_url=EXCLUDED.thumbnail_url, view_count=EXCLUDED.view_count, like_count=EXCLUDED.like_count, comment_count=EXCLUDED.comment_count, published_at=EXCLUDED.published_at, duration=EXCLUDED.duration, status=EXCLUDED.status, category_id=EXCLUDED.category_id, updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, q,
		video.ID, video.Title, video.Description, video.ThumbnailURL,
		video.ViewCount, video.LikeCount, video.CommentCount, nullTime(video.PublishedAt),
		video.Duration, video.Status, video.CategoryID, video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert video %s: %w", video.ID, err)
	}
	return nil
}

type CommentRepository struct{ db *sql.DB }

func NewCommentRepository(db *sql.DB) repository.IComment {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Upsert(ctx context.Context, c *model.Comment) error {
	q := `INSERT INTO comments (id, video_id, author_name, author_channel_id, text, like_count, published_at, parent_id, is_owner_comment, updated_at)
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
          ON CONFLICT (id) DO UPDATE SET video_id=EXCLUDED.video_id, author_name=EXCLUDED.author_name, author_channel_id=EXCLUDED.author_channel_id, text=EXCLUDED.text, like_count=EXCLUDED.like_count, published_at=EXCLUDED.published_at, parent_id=EXCLUDED.parent_id, is_owner_comment=EXCLUDED.is_owner_comment, updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, q,
		c.ID, c.VideoID, c.AuthorName, c.AuthorChannelID, c.Text, c.LikeCount,
		nullTime(c.PublishedAt), nullStringPtr(c.ParentID), c.IsOwnerComment, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert comment %s: %w", c.ID, err)
	}
	return nil
}

func (r *CommentRepository) Get(ctx context.Context, commentID string) (*model.Comment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, video_id, author_name, author_channel_id, text, like_count, published_at, parent_id, is_owner_comment FROM comments WHERE id = $1`, commentID)
	return scanComment(row)
}

func (r *CommentRepository) Delete(ctx context.Context, commentID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1 OR parent_id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", commentID, err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*model.Comment, error) {
	var (
		c           model.Comment
		publishedAt sql.NullTime
		parentID    sql.NullString
	)
	err := row.Scan(&c.ID, &c.VideoID, &c.AuthorName, &c.AuthorChannelID, &c.Text, &c.LikeCount, &publishedAt, &parentID, &c.IsOwnerComment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	c.PublishedAt = timePtr(publishedAt)
	c.ParentID = stringPtr(parentID)
	return &c, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
