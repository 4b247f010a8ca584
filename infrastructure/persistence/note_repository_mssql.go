package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

type NoteRepositoryMSSQL struct{ db *sql.DB }

func NewNoteRepositoryMSSQL(db *sql.DB) repository.INote {
	return &NoteRepositoryMSSQL{db: db}
}

func (r *NoteRepositoryMSSQL) ListByVideo(ctx context.Context, videoID string, filter model.NoteFilter) ([]model.Note, error) {
	q, args := buildNoteListQuery("SELECT "+noteColumns+" FROM dbo.notes", videoID, filter, func(n int) string { return fmt.Sprintf("@p%d", n) })
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes (mssql): %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

func (r *NoteRepositoryMSSQL) Get(ctx context.Context, noteID int64) (*model.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM dbo.notes WHERE id = @p1`, noteID)
	return scanNote(row)
}

func (r *NoteRepositoryMSSQL) Create(ctx context.Context, note *model.Note) error {
	now := time.Now().UTC()
	note.CreatedAt, note.UpdatedAt = now, now
	q := `INSERT INTO dbo.notes (video_id, title, content, category, priority, is_completed, created_at, updated_at)
OUTPUT INSERTED.id
VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8)`
	err := r.db.QueryRowContext(ctx, q,
		note.VideoID, note.Title, note.Content, string(note.Category), string(note.Priority), note.IsCompleted, now, now,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("insert note (mssql): %w", err)
	}
	return nil
}

func (r *NoteRepositoryMSSQL) Update(ctx context.Context, note *model.Note) error {
	note.UpdatedAt = time.Now().UTC()
	q := `UPDATE dbo.notes SET title=@p1, content=@p2, category=@p3, priority=@p4, is_completed=@p5, updated_at=@p6 WHERE id=@p7`
	res, err := r.db.ExecContext(ctx, q,
		note.Title, note.Content, string(note.Category), string(note.Priority), note.IsCompleted, note.UpdatedAt, note.ID,
	)
	if err != nil {
		return fmt.Errorf("update note %d (mssql): %w", note.ID, err)
	}
	return requireAffected(res)
}

func (r *NoteRepositoryMSSQL) Delete(ctx context.Context, noteID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dbo.notes WHERE id = @p1`, noteID)
	if err != nil {
		return fmt.Errorf("delete note %d (mssql): %w", noteID, err)
	}
	return requireAffected(res)
}

func (r *NoteRepositoryMSSQL) ToggleCompleted(ctx context.Context, noteID int64) (*model.Note, error) {
	q := `UPDATE dbo.notes SET is_completed = 1 - is_completed, updated_at = @p1
OUTPUT INSERTED.id, INSERTED.video_id, INSERTED.title, INSERTED.content, INSERTED.category, INSERTED.priority, INSERTED.is_completed, INSERTED.created_at, INSERTED.updated_at
WHERE id = @p2`
	row := r.db.QueryRowContext(ctx, q, time.Now().UTC(), noteID)
	return scanNote(row)
}
