package model

import (
	"strings"
	"time"
)

type NoteCategory string

const (
	NoteCategoryGeneral     NoteCategory = "general"
	NoteCategoryContent     NoteCategory = "content"
	NoteCategoryThumbnail   NoteCategory = "thumbnail"
	NoteCategoryTitle       NoteCategory = "title"
	NoteCategoryDescription NoteCategory = "description"
	NoteCategoryTags        NoteCategory = "tags"
)

func (c NoteCategory) Valid() bool {
	switch c {
	case NoteCategoryGeneral, NoteCategoryContent, NoteCategoryThumbnail,
		NoteCategoryTitle, NoteCategoryDescription, NoteCategoryTags:
		return true
	}
	return false
}

type NotePriority string

const (
	NotePriorityLow    NotePriority = "low"
	NotePriorityMedium NotePriority = "medium"
	NotePriorityHigh   NotePriority = "high"
)

func (p NotePriority) Valid() bool {
	switch p {
	case NotePriorityLow, NotePriorityMedium, NotePriorityHigh:
		return true
	}
	return false
}

type Note struct {
	ID          int64        `json:"id"`
	VideoID     string       `json:"video_id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Category    NoteCategory `json:"category"`
	Priority    NotePriority `json:"priority"`
	IsCompleted bool         `json:"is_completed"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Validate checks the fields a stored note must always satisfy.
func (n Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return NewValidationError("Note title is required")
	}
	if !n.Category.Valid() {
		return NewValidationError("Invalid category: " + string(n.Category))
	}
	if !n.Priority.Valid() {
		return NewValidationError("Invalid priority: " + string(n.Priority))
	}
	return nil
}

// NotePatch is a partial update. A nil field is left untouched.
type NotePatch struct {
	Title       *string
	Content     *string
	Category    *NoteCategory
	Priority    *NotePriority
	IsCompleted *bool
}

func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil &&
		p.Priority == nil && p.IsCompleted == nil
}

// Apply merges the patch over n and returns the result. n is not modified.
func (p NotePatch) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		n.Content = strings.TrimSpace(*p.Content)
	}
	if p.Category != nil {
		n.Category = *p.Category
	}
	if p.Priority != nil {
		n.Priority = *p.Priority
	}
	if p.IsCompleted != nil {
		n.IsCompleted = *p.IsCompleted
	}
	return n
}

// NoteFilter narrows a per-video note listing. Empty fields match all.
type NoteFilter struct {
	Category NoteCategory
	Priority NotePriority
}
