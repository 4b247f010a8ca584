package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

type IEventUsecase interface {
	List(ctx context.Context, query dto.EventLogQuery) ([]model.EventLog, error)
}

type EventUsecase struct {
	events repository.IEventLog
}

func NewEventUsecase(events repository.IEventLog) IEventUsecase {
	return &EventUsecase{events: events}
}

func (u *EventUsecase) List(ctx context.Context, query dto.EventLogQuery) ([]model.EventLog, error) {
	filter := model.EventLogFilter{VideoID: strings.TrimSpace(query.VideoID), Limit: query.Limit}
	if query.Limit < 0 {
		return nil, model.NewValidationError("limit must be positive")
	}
	if t := strings.TrimSpace(query.EventType); t != "" {
		switch model.EventType(t) {
		case model.EventTypeVideo, model.EventTypeComment, model.EventTypeNote, model.EventTypeAuth:
			filter.EventType = model.EventType(t)
		default:
			return nil, model.NewValidationError("Invalid eventType: " + t)
		}
	}
	var err error
	if filter.StartDate, err = parseDate(query.StartDate, false); err != nil {
		return nil, model.NewValidationError("Invalid startDate")
	}
	if filter.EndDate, err = parseDate(query.EndDate, true); err != nil {
		return nil, model.NewValidationError("Invalid endDate")
	}

	rows, err := u.events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return rows, nil
}

// parseDate accepts RFC3339 or YYYY-MM-DD. A bare end date covers the
// whole day.
func parseDate(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
