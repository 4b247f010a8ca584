package repository

import (
	"context"

	"youtube-companion/domain/model"
)

type IEventLog interface {
	Insert(ctx context.Context, event *model.EventLog) error
	List(ctx context.Context, filter model.EventLogFilter) ([]model.EventLog, error)
}

// IEventSink receives every stored audit row. Delivery is best-effort.
type IEventSink interface {
	Publish(ctx context.Context, event *model.EventLog) error
}
