package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
	"youtube-companion/usecase"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNoteUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and logs once", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := newEventLogger()
		repo.On("Create", ctx, mock.MatchedBy(func(n *model.Note) bool {
			return n.Title == "Idea" && n.Content == "" && n.Category == model.NoteCategoryGeneral &&
				n.Priority == model.NotePriorityMedium && n.VideoID == "vid"
		})).Run(func(args mock.Arguments) { args.Get(1).(*model.Note).ID = 42 }).Return(nil)

		note, err := usecase.NewNoteUsecase(repo, events).Create(ctx, "vid", dto.NoteCreateRequest{Title: "  Idea  "})
		require.NoError(t, err)
		assert.Equal(t, int64(42), note.ID)

		entries := events.entries()
		require.Len(t, entries, 1)
		assert.Equal(t, model.EventTypeNote, entries[0].Type)
		assert.Equal(t, "create", entries[0].Action)
		assert.Equal(t, int64(42), entries[0].NoteID)
		assert.NoError(t, entries[0].Err)
	})

	t.Run("blank title rejected before storage", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := newEventLogger()
		_, err := usecase.NewNoteUsecase(repo, events).Create(ctx, "vid", dto.NoteCreateRequest{Title: "   "})
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.EqualError(t, err, "Note title is required")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Empty(t, events.entries())
	})

	t.Run("invalid enum rejected", func(t *testing.T) {
		repo := new(MockNoteRepository)
		_, err := usecase.NewNoteUsecase(repo, newEventLogger()).Create(ctx, "vid", dto.NoteCreateRequest{Title: "x", Priority: "urgent"})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("storage failure logs error", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := newEventLogger()
		repo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))
		_, err := usecase.NewNoteUsecase(repo, events).Create(ctx, "vid", dto.NoteCreateRequest{Title: "x"})
		assert.ErrorContains(t, err, "insert failed")
		entries := events.entries()
		require.Len(t, entries, 1)
		assert.EqualError(t, entries[0].Err, "insert failed")
	})

	t.Run("audit failure does not fail the operation", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := new(MockEventLogger)
		events.On("Log", mock.Anything, mock.Anything).Return(errors.New("audit down"))
		repo.On("Create", ctx, mock.Anything).Return(nil)
		_, err := usecase.NewNoteUsecase(repo, events).Create(ctx, "vid", dto.NoteCreateRequest{Title: "x"})
		assert.NoError(t, err)
	})
}

func TestNoteUsecase_Update(t *testing.T) {
	ctx := context.Background()
	existing := &model.Note{ID: 1, VideoID: "vid", Title: "Old", Content: "c", Category: model.NoteCategoryGeneral, Priority: model.NotePriorityLow}

	t.Run("empty patch rejected without storage", func(t *testing.T) {
		repo := new(MockNoteRepository)
		_, err := usecase.NewNoteUsecase(repo, newEventLogger()).Update(ctx, 1, dto.NoteUpdateRequest{})
		assert.EqualError(t, err, "No fields to update")
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("merges patch and writes full record", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := newEventLogger()
		before := *existing
		repo.On("Get", ctx, int64(1)).Return(&before, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(n *model.Note) bool {
			return n.Title == "New" && n.Content == "c" && n.Priority == model.NotePriorityLow && n.IsCompleted
		})).Return(nil)

		note, err := usecase.NewNoteUsecase(repo, events).Update(ctx, 1, dto.NoteUpdateRequest{
			Title: strPtr(" New "), IsCompleted: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "New", note.Title)
		assert.True(t, note.IsCompleted)
		assert.Equal(t, "Old", before.Title, "stored copy not mutated")

		entries := events.entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "update", entries[0].Action)
		assert.Equal(t, "vid", entries[0].VideoID)
	})

	t.Run("unknown id is 404 without logging", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := newEventLogger()
		repo.On("Get", ctx, int64(9)).Return(nil, model.ErrNotFound)
		_, err := usecase.NewNoteUsecase(repo, events).Update(ctx, 9, dto.NoteUpdateRequest{Title: strPtr("x")})
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.EqualError(t, err, "Note not found")
		assert.Empty(t, events.entries())
	})

	t.Run("blank merged title rejected", func(t *testing.T) {
		repo := new(MockNoteRepository)
		before := *existing
		repo.On("Get", ctx, int64(1)).Return(&before, nil)
		_, err := usecase.NewNoteUsecase(repo, newEventLogger()).Update(ctx, 1, dto.NoteUpdateRequest{Title: strPtr("  ")})
		assert.ErrorIs(t, err, model.ErrValidation)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestNoteUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and logs", func(t *testing.T) {
		repo := new(MockNoteRepository)
		events := newEventLogger()
		repo.On("Get", ctx, int64(3)).Return(&model.Note{ID: 3, VideoID: "vid"}, nil)
		repo.On("Delete", ctx, int64(3)).Return(nil)
		require.NoError(t, usecase.NewNoteUsecase(repo, events).Delete(ctx, 3))
		assert.Len(t, events.entries(), 1)
	})

	t.Run("unknown id does not mutate", func(t *testing.T) {
		repo := new(MockNoteRepository)
		repo.On("Get", ctx, int64(3)).Return(nil, model.ErrNotFound)
		err := usecase.NewNoteUsecase(repo, newEventLogger()).Delete(ctx, 3)
		assert.ErrorIs(t, err, model.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestNoteUsecase_ToggleCompleted(t *testing.T) {
	ctx := context.Background()
	repo := new(MockNoteRepository)
	events := newEventLogger()
	repo.On("ToggleCompleted", ctx, int64(5)).Return(&model.Note{ID: 5, VideoID: "vid", IsCompleted: true}, nil).Once()
	repo.On("ToggleCompleted", ctx, int64(6)).Return(nil, model.ErrNotFound).Once()

	uc := usecase.NewNoteUsecase(repo, events)
	note, err := uc.ToggleCompleted(ctx, 5)
	require.NoError(t, err)
	assert.True(t, note.IsCompleted)

	_, err = uc.ToggleCompleted(ctx, 6)
	assert.ErrorIs(t, err, model.ErrNotFound)

	entries := events.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "toggle_completion", entries[0].Action)
}

func TestNoteUsecase_Filters(t *testing.T) {
	ctx := context.Background()
	repo := new(MockNoteRepository)
	events := newEventLogger()
	uc := usecase.NewNoteUsecase(repo, events)

	_, err := uc.ListByCategory(ctx, "vid", "")
	assert.EqualError(t, err, "Category parameter is required")
	_, err = uc.ListByPriority(ctx, "vid", " ")
	assert.EqualError(t, err, "Priority parameter is required")
	_, err = uc.ListByCategory(ctx, "vid", "memes")
	assert.ErrorIs(t, err, model.ErrValidation)

	repo.On("ListByVideo", ctx, "vid", model.NoteFilter{Priority: model.NotePriorityHigh}).
		Return([]model.Note{{ID: 1}, {ID: 2}}, nil)
	notes, err := uc.ListByPriority(ctx, "vid", "high")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	entries := events.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "fetch_by_priority", entries[0].Action)
	assert.Equal(t, dto.CountResponse{Count: 2}, entries[0].Response)
}

func TestNoteUsecase_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockNoteRepository)
	events := newEventLogger()
	repo.On("Get", ctx, int64(1)).Return(nil, errors.New("conn reset"))

	_, err := usecase.NewNoteUsecase(repo, events).Get(ctx, 1)
	assert.ErrorContains(t, err, "conn reset")
	assert.NotErrorIs(t, err, model.ErrNotFound)
	entries := events.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "fetch_single", entries[0].Action)
}
