package dto

import (
	"strings"

	"youtube-companion/domain/model"
)

type NoteCreateRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// ToNote applies defaults for omitted category and priority.
func (r NoteCreateRequest) ToNote(videoID string) model.Note {
	note := model.Note{
		VideoID:  videoID,
		Title:    strings.TrimSpace(r.Title),
		Content:  strings.TrimSpace(r.Content),
		Category: model.NoteCategoryGeneral,
		Priority: model.NotePriorityMedium,
	}
	if r.Category != "" {
		note.Category = model.NoteCategory(r.Category)
	}
	if r.Priority != "" {
		note.Priority = model.NotePriority(r.Priority)
	}
	return note
}

// NoteUpdateRequest represents PUT /api/notes/:noteId. Only fields present in
// the payload are written. The frontend sends isCompleted in camelCase.
type NoteUpdateRequest struct {
	Title            *string `json:"title"`
	Content          *string `json:"content"`
	Category         *string `json:"category"`
	Priority         *string `json:"priority"`
	IsCompleted      *bool   `json:"isCompleted"`
	IsCompletedSnake *bool   `json:"is_completed"`
}

func (r NoteUpdateRequest) ToPatch() model.NotePatch {
	patch := model.NotePatch{
		Title:       r.Title,
		Content:     r.Content,
		IsCompleted: r.IsCompleted,
	}
	if patch.IsCompleted == nil {
		patch.IsCompleted = r.IsCompletedSnake
	}
	if r.Category != nil {
		c := model.NoteCategory(*r.Category)
		patch.Category = &c
	}
	if r.Priority != nil {
		p := model.NotePriority(*r.Priority)
		patch.Priority = &p
	}
	return patch
}
