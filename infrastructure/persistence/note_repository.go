package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

const noteColumns = `id, video_id, title, content, category, priority, is_completed, created_at, updated_at`

type NoteRepository struct{ db *sql.DB }

func NewNoteRepository(db *sql.DB) repository.INote {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) ListByVideo(ctx context.Context, videoID string, filter model.NoteFilter) ([]model.Note, error) {
	q, args := buildNoteListQuery("SELECT "+noteColumns+" FROM notes", videoID, filter, func(n int) string { return fmt.Sprintf("$%d", n) })
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

func (r *NoteRepository) Get(ctx context.Context, noteID int64) (*model.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, noteID)
	return scanNote(row)
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	now := time.Now().UTC()
	note.CreatedAt, note.UpdatedAt = now, now
	q := `INSERT INTO notes (video_id, title, content, category, priority, is_completed, created_at, updated_at)
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`
	err := r.db.QueryRowContext(ctx, q,
		note.VideoID, note.Title, note.Content, string(note.Category), string(note.Priority), note.IsCompleted, now, now,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// Update writes the full record. Callers merge partial changes first.
func (r *NoteRepository) Update(ctx context.Context, note *model.Note) error {
	note.UpdatedAt = time.Now().UTC()
	q := `UPDATE notes SET title=$1, content=$2, category=$3, priority=$4, is_completed=$5, updated_at=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, q,
		note.Title, note.Content, string(note.Category), string(note.Priority), note.IsCompleted, note.UpdatedAt, note.ID,
	)
	if err != nil {
		return fmt.Errorf("update note %d: %w", note.ID, err)
	}
	return requireAffected(res)
}

func (r *NoteRepository) Delete(ctx context.Context, noteID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, noteID)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", noteID, err)
	}
	return requireAffected(res)
}

// ToggleCompleted flips the flag in a single statement so concurrent
// toggles never read a stale value.
func (r *NoteRepository) ToggleCompleted(ctx context.Context, noteID int64) (*model.Note, error) {
	q := `UPDATE notes SET is_completed = NOT is_completed, updated_at = $1 WHERE id = $2 RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, q, time.Now().UTC(), noteID)
	return scanNote(row)
}

func buildNoteListQuery(base, videoID string, filter model.NoteFilter, placeholder func(int) string) (string, []any) {
	conds := []string{"video_id = " + placeholder(1)}
	args := []any{videoID}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		conds = append(conds, "category = "+placeholder(len(args)))
	}
	if filter.Priority != "" {
		args = append(args, string(filter.Priority))
		conds = append(conds, "priority = "+placeholder(len(args)))
	}
	return base + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY created_at DESC, id DESC", args
}

func scanNote(row rowScanner) (*model.Note, error) {
	var (
		n                  model.Note
		category, priority string
	)
	err := row.Scan(&n.ID, &n.VideoID, &n.Title, &n.Content, &category, &priority, &n.IsCompleted, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	n.Category = model.NoteCategory(category)
	n.Priority = model.NotePriority(priority)
	return &n, nil
}

func scanNotes(rows *sql.Rows) ([]model.Note, error) {
	notes := make([]model.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}
