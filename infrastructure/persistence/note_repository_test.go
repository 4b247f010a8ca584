package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"youtube-companion/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var noteRowColumns = []string{"id", "video_id", "title", "content", "category", "priority", "is_completed", "created_at", "updated_at"}

func TestNoteRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notes (video_id, title, content, category, priority, is_completed, created_at, updated_at)`)).
		WithArgs("vid1", "Fix thumbnail", "", "general", "medium", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	note := &model.Note{VideoID: "vid1", Title: "Fix thumbnail", Category: model.NoteCategoryGeneral, Priority: model.NotePriorityMedium}
	require.NoError(t, NewNoteRepository(db).Create(context.Background(), note))
	require.Equal(t, int64(42), note.ID)
	require.False(t, note.CreatedAt.IsZero())
	require.Equal(t, note.CreatedAt, note.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListByVideo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	repo := NewNoteRepository(db)

	t.Run("all notes newest first", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+noteColumns+` FROM notes WHERE video_id = $1 ORDER BY created_at DESC, id DESC`)).
			WithArgs("vid1").
			WillReturnRows(sqlmock.NewRows(noteRowColumns).
				AddRow(2, "vid1", "second", "", "tags", "high", false, now, now).
				AddRow(1, "vid1", "first", "c", "general", "low", true, now.Add(-time.Hour), now))

		notes, err := repo.ListByVideo(context.Background(), "vid1", model.NoteFilter{})
		require.NoError(t, err)
		require.Len(t, notes, 2)
		require.Equal(t, int64(2), notes[0].ID)
		require.Equal(t, model.NoteCategoryTags, notes[0].Category)
		require.True(t, notes[1].IsCompleted)
	})

	t.Run("category filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM notes WHERE video_id = $1 AND category = $2 ORDER BY created_at DESC`)).
			WithArgs("vid1", "thumbnail").
			WillReturnRows(sqlmock.NewRows(noteRowColumns))

		notes, err := repo.ListByVideo(context.Background(), "vid1", model.NoteFilter{Category: model.NoteCategoryThumbnail})
		require.NoError(t, err)
		require.NotNil(t, notes)
		require.Empty(t, notes)
	})

	t.Run("priority filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM notes WHERE video_id = $1 AND priority = $2 ORDER BY`)).
			WithArgs("vid1", "high").
			WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow(5, "vid1", "x", "", "general", "high", false, now, now))

		notes, err := repo.ListByVideo(context.Background(), "vid1", model.NoteFilter{Priority: model.NotePriorityHigh})
		require.NoError(t, err)
		require.Len(t, notes, 1)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM notes WHERE id = $1`)).WithArgs(99).WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err = NewNoteRepository(db).Get(context.Background(), 99)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta(`UPDATE notes SET title=$1, content=$2, category=$3, priority=$4, is_completed=$5, updated_at=$6 WHERE id=$7`)
	mock.ExpectExec(query).
		WithArgs("New", "body", "title", "low", true, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).
		WithArgs("New", "body", "title", "low", true, sqlmock.AnyArg(), 8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewNoteRepository(db)
	note := &model.Note{ID: 7, Title: "New", Content: "body", Category: model.NoteCategoryTitle, Priority: model.NotePriorityLow, IsCompleted: true}
	require.NoError(t, repo.Update(context.Background(), note))

	note.ID = 8
	require.ErrorIs(t, repo.Update(context.Background(), note), model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ToggleCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	query := regexp.QuoteMeta(`UPDATE notes SET is_completed = NOT is_completed, updated_at = $1 WHERE id = $2 RETURNING ` + noteColumns)
	mock.ExpectQuery(query).WithArgs(sqlmock.AnyArg(), 3).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow(3, "vid1", "n", "", "general", "medium", true, now, now))
	mock.ExpectQuery(query).WithArgs(sqlmock.AnyArg(), 4).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	repo := NewNoteRepository(db)
	note, err := repo.ToggleCompleted(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, note.IsCompleted)

	_, err = repo.ToggleCompleted(context.Background(), 4)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM notes WHERE id = $1`)).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, NewNoteRepository(db).Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepositoryMSSQL_CreateAndToggle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO dbo.notes`)).
		WithArgs("vid1", "t", "", "general", "medium", false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE dbo.notes SET is_completed = 1 - is_completed`)).
		WithArgs(sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow(1, "vid1", "t", "", "general", "medium", true, now, now))

	repo := NewNoteRepositoryMSSQL(db)
	note := &model.Note{VideoID: "vid1", Title: "t", Category: model.NoteCategoryGeneral, Priority: model.NotePriorityMedium}
	require.NoError(t, repo.Create(context.Background(), note))
	toggled, err := repo.ToggleCompleted(context.Background(), note.ID)
	require.NoError(t, err)
	require.True(t, toggled.IsCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}
