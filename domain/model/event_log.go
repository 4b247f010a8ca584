package model

import "time"

type EventType string

const (
	EventTypeVideo   EventType = "video"
	EventTypeComment EventType = "comment"
	EventTypeNote    EventType = "note"
	EventTypeAuth    EventType = "auth"
)

type EventStatus string

const (
	EventStatusSuccess EventStatus = "success"
	EventStatusError   EventStatus = "error"
)

// EventLog is an append-only audit row. Entity ids are soft references.
type EventLog struct {
	ID           int64       `json:"id"`
	EventType    EventType   `json:"event_type"`
	EventAction  string      `json:"event_action"`
	VideoID      *string     `json:"video_id"`
	CommentID    *string     `json:"comment_id"`
	NoteID       *int64      `json:"note_id"`
	UserAgent    string      `json:"user_agent"`
	IPAddress    string      `json:"ip_address"`
	RequestData  string      `json:"request_data"`
	ResponseData string      `json:"response_data"`
	Status       EventStatus `json:"status"`
	ErrorMessage *string     `json:"error_message"`
	CreatedAt    time.Time   `json:"created_at"`
}

type EventLogFilter struct {
	EventType EventType
	VideoID   string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// RequestMeta is the per-request context recorded alongside each event.
type RequestMeta struct {
	RequestID string
	Method    string
	URL       string
	UserAgent string
	IPAddress string
}
