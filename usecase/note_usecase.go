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

type INoteUsecase interface {
	ListByVideo(ctx context.Context, videoID string) ([]model.Note, error)
	ListByCategory(ctx context.Context, videoID, category string) ([]model.Note, error)
	ListByPriority(ctx context.Context, videoID, priority string) ([]model.Note, error)
	Get(ctx context.Context, noteID int64) (*model.Note, error)
	Create(ctx context.Context, videoID string, req dto.NoteCreateRequest) (*model.Note, error)
	Update(ctx context.Context, noteID int64, req dto.NoteUpdateRequest) (*model.Note, error)
	Delete(ctx context.Context, noteID int64) error
	ToggleCompleted(ctx context.Context, noteID int64) (*model.Note, error)
}

type NoteUsecase struct {
	notes  repository.INote
	events audit.IEventLogger
}

func NewNoteUsecase(notes repository.INote, events audit.IEventLogger) INoteUsecase {
	return &NoteUsecase{notes: notes, events: events}
}

var errNoteNotFound = model.NewNotFoundError("Note not found")

func (u *NoteUsecase) ListByVideo(ctx context.Context, videoID string) ([]model.Note, error) {
	return u.list(ctx, "fetch_all", videoID, model.NoteFilter{}, map[string]any{"videoId": videoID})
}

func (u *NoteUsecase) ListByCategory(ctx context.Context, videoID, category string) ([]model.Note, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, model.NewValidationError("Category parameter is required")
	}
	c := model.NoteCategory(category)
	if !c.Valid() {
		return nil, model.NewValidationError("Invalid category: " + category)
	}
	return u.list(ctx, "fetch_by_category", videoID, model.NoteFilter{Category: c},
		map[string]any{"videoId": videoID, "category": category})
}

func (u *NoteUsecase) ListByPriority(ctx context.Context, videoID, priority string) ([]model.Note, error) {
	priority = strings.TrimSpace(priority)
	if priority == "" {
		return nil, model.NewValidationError("Priority parameter is required")
	}
	p := model.NotePriority(priority)
	if !p.Valid() {
		return nil, model.NewValidationError("Invalid priority: " + priority)
	}
	return u.list(ctx, "fetch_by_priority", videoID, model.NoteFilter{Priority: p},
		map[string]any{"videoId": videoID, "priority": priority})
}

func (u *NoteUsecase) list(ctx context.Context, action, videoID string, filter model.NoteFilter, request any) ([]model.Note, error) {
	notes, err := u.notes.ListByVideo(ctx, videoID, filter)
	if err != nil {
		u.record(ctx, action, videoID, 0, request, nil, err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	u.record(ctx, action, videoID, 0, request, dto.CountResponse{Count: len(notes)}, nil)
	return notes, nil
}

func (u *NoteUsecase) Get(ctx context.Context, noteID int64) (*model.Note, error) {
	note, err := u.find(ctx, "fetch_single", noteID)
	if err != nil {
		return nil, err
	}
	u.record(ctx, "fetch_single", note.VideoID, noteID, map[string]any{"noteId": noteID}, note, nil)
	return note, nil
}

func (u *NoteUsecase) Create(ctx context.Context, videoID string, req dto.NoteCreateRequest) (*model.Note, error) {
	note := req.ToNote(videoID)
	if err := note.Validate(); err != nil {
		return nil, err
	}
	if err := u.notes.Create(ctx, &note); err != nil {
		u.record(ctx, "create", videoID, 0, req, nil, err)
		return nil, fmt.Errorf("create note: %w", err)
	}
	u.record(ctx, "create", videoID, note.ID, req, note, nil)
	return &note, nil
}

func (u *NoteUsecase) Update(ctx context.Context, noteID int64, req dto.NoteUpdateRequest) (*model.Note, error) {
	patch := req.ToPatch()
	if patch.IsEmpty() {
		return nil, model.NewValidationError("No fields to update")
	}
	existing, err := u.find(ctx, "update", noteID)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*existing)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	request := map[string]any{"noteId": noteID, "changes": req}
	if err := u.notes.Update(ctx, &updated); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errNoteNotFound
		}
		u.record(ctx, "update", existing.VideoID, noteID, request, nil, err)
		return nil, fmt.Errorf("update note: %w", err)
	}
	u.record(ctx, "update", existing.VideoID, noteID, request,
		map[string]any{"before": existing, "after": updated}, nil)
	return &updated, nil
}

func (u *NoteUsecase) Delete(ctx context.Context, noteID int64) error {
	existing, err := u.find(ctx, "delete", noteID)
	if err != nil {
		return err
	}
	request := map[string]any{"noteId": noteID}
	if err := u.notes.Delete(ctx, noteID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errNoteNotFound
		}
		u.record(ctx, "delete", existing.VideoID, noteID, request, nil, err)
		return fmt.Errorf("delete note: %w", err)
	}
	u.record(ctx, "delete", existing.VideoID, noteID, request, map[string]any{"before": existing}, nil)
	return nil
}

// ToggleCompleted flips the flag in storage. The caller never supplies
// the target value.
func (u *NoteUsecase) ToggleCompleted(ctx context.Context, noteID int64) (*model.Note, error) {
	request := map[string]any{"noteId": noteID}
	note, err := u.notes.ToggleCompleted(ctx, noteID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errNoteNotFound
		}
		u.record(ctx, "toggle_completion", "", noteID, request, nil, err)
		return nil, fmt.Errorf("toggle note: %w", err)
	}
	u.record(ctx, "toggle_completion", note.VideoID, noteID, request, note, nil)
	return note, nil
}

// find maps a missing row to a 404 without logging. Other failures are
// logged under action.
func (u *NoteUsecase) find(ctx context.Context, action string, noteID int64) (*model.Note, error) {
	note, err := u.notes.Get(ctx, noteID)
	if err == nil {
		return note, nil
	}
	if errors.Is(err, model.ErrNotFound) {
		return nil, errNoteNotFound
	}
	u.record(ctx, action, "", noteID, map[string]any{"noteId": noteID}, nil, err)
	return nil, fmt.Errorf("get note: %w", err)
}

func (u *NoteUsecase) record(ctx context.Context, action, videoID string, noteID int64, request, response any, err error) {
	_ = u.events.Log(ctx, audit.Entry{
		Type:     model.EventTypeNote,
		Action:   action,
		VideoID:  videoID,
		NoteID:   noteID,
		Request:  request,
		Response: response,
		Err:      err,
	})
}
