package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/logger"
)

// Entry is one audit call. Request and Response are serialized as JSON.
type Entry struct {
	Type      model.EventType
	Action    string
	VideoID   string
	CommentID string
	NoteID    int64
	Request   any
	Response  any
	Err       error
}

type IEventLogger interface {
	Log(ctx context.Context, entry Entry) error
}

type EventLogger struct {
	repo  repository.IEventLog
	sinks []repository.IEventSink
	now   func() time.Time
}

func NewEventLogger(repo repository.IEventLog, sinks ...repository.IEventSink) *EventLogger {
	active := make([]repository.IEventSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return &EventLogger{repo: repo, sinks: active, now: func() time.Time { return time.Now().UTC() }}
}

// Log stores exactly one row and then notifies the sinks. The returned
// error is informational; callers must not fail their operation on it.
func (l *EventLogger) Log(ctx context.Context, entry Entry) error {
	meta := RequestMetaFrom(ctx)
	event := &model.EventLog{
		EventType:    entry.Type,
		EventAction:  entry.Action,
		UserAgent:    meta.UserAgent,
		IPAddress:    meta.IPAddress,
		RequestData:  stringify(mergeRequest(entry.Request, meta)),
		ResponseData: stringify(entry.Response),
		Status:       model.EventStatusSuccess,
		CreatedAt:    l.now(),
	}
	if entry.VideoID != "" {
		v := entry.VideoID
		event.VideoID = &v
	}
	if entry.CommentID != "" {
		c := entry.CommentID
		event.CommentID = &c
	}
	if entry.NoteID != 0 {
		n := entry.NoteID
		event.NoteID = &n
	}
	if entry.Err != nil {
		msg := entry.Err.Error()
		event.Status = model.EventStatusError
		event.ErrorMessage = &msg
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"eventType":   event.EventType,
		"eventAction": event.EventAction,
		"status":      event.Status,
	})
	if err := l.repo.Insert(ctx, event); err != nil {
		log.WithField("error", err).Error("Error while storing event log")
		return fmt.Errorf("store event log: %w", err)
	}
	log.Debug("Event logged")

	for _, sink := range l.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			log.WithField("error", err).WithField("sink", fmt.Sprintf("%T", sink)).Warn("Error while publishing event log")
		}
	}
	return nil
}

// mergeRequest adds method and url to the payload. Object payloads are
// merged key by key; anything else is kept under "body".
func mergeRequest(payload any, meta model.RequestMeta) any {
	if payload == nil && meta.Method == "" && meta.URL == "" {
		return nil
	}
	merged := map[string]any{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return payload
		}
		if err := json.Unmarshal(raw, &merged); err != nil {
			merged = map[string]any{"body": payload}
		}
	}
	if meta.Method != "" {
		merged["method"] = meta.Method
	}
	if meta.URL != "" {
		merged["url"] = meta.URL
	}
	return merged
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		fallback, _ := json.Marshal(map[string]string{
			"error":   "Could not stringify",
			"message": err.Error(),
		})
		return string(fallback)
	}
	return string(raw)
}
