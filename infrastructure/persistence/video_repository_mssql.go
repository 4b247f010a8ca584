package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

type VideoRepositoryMSSQL struct{ db *sql.DB }

func NewVideoRepositoryMSSQL(db *sql.DB) repository.IVideo {
	return &VideoRepositoryMSSQL{db: db}
}

func (r *VideoRepositoryMSSQL) Upsert(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now().UTC()
	q := `MERGE dbo.videos WITH (HOLDLOCK) AS t
USING (SELECT @p1 AS id) AS s ON t.id = s.id
WHEN MATCHED THEN UPDATE SET title=@p2, description=@p3, thumbnail_url=@p4, view_count=@p5, like_count=@p6, comment_count=@p7, published_at=@p8, duration=@p9, status=@p10, category_id=@p11, updated_at=@p12
WHEN NOT MATCHED THEN INSERT (id, title, description, thumbnail_url, view_count, like_count, comment_count, published_at, duration, status, category_id, updated_at)
VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8,@p9,@p10,@p11,@p12);`
	_, err := r.db.ExecContext(ctx, q,
		video.ID, video.Title, video.Description, video.ThumbnailURL,
		video.ViewCount, video.LikeCount, video.CommentCount, nullTime(video.PublishedAt),
		video.Duration, video.Status, video.CategoryID, video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert video %s (mssql): %w", video.ID, err)
	}
	return nil
}

type CommentRepositoryMSSQL struct{ db *sql.DB }

func NewCommentRepositoryMSSQL(db *sql.DB) repository.IComment {
	return &CommentRepositoryMSSQL{db: db}
}

func (r *CommentRepositoryMSSQL) Upsert(ctx context.Context, c *model.Comment) error {
	q := `MERGE dbo.comments WITH (HOLDLOCK) AS t
USING (SELECT @p1 AS id) AS s ON t.id = s.id
WHEN MATCHED THEN UPDATE SET video_id=@p2, author_name=@p3, author_channel_id=@p4, text=@p5, like_count=@p6, published_at=@p7, parent_id=@p8, is_owner_comment=@p9, updated_at=@p10
WHEN NOT MATCHED THEN INSERT (id, video_id, author_name, author_channel_id, text, like_count, published_at, parent_id, is_owner_comment, updated_at)
VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8,@p9,@p10);`
	_, err := r.db.ExecContext(ctx, q,
		c.ID, c.VideoID, c.AuthorName, c.AuthorChannelID, c.Text, c.LikeCount,
		nullTime(c.PublishedAt), nullStringPtr(c.ParentID), c.IsOwnerComment, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert comment %s (mssql): %w", c.ID, err)
	}
	return nil
}

func (r *CommentRepositoryMSSQL) Get(ctx context.Context, commentID string) (*model.Comment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, video_id, author_name, author_channel_id, text, like_count, published_at, parent_id, is_owner_comment FROM dbo.comments WHERE id = @p1`, commentID)
	return scanComment(row)
}

func (r *CommentRepositoryMSSQL) Delete(ctx context.Context, commentID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dbo.comments WHERE id = @p1 OR parent_id = @p1`, commentID)
	if err != nil {
		return fmt.Errorf("delete comment %s (mssql): %w", commentID, err)
	}
	return requireAffected(res)
}
