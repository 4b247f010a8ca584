package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

type EventLogRepositoryMSSQL struct{ db *sql.DB }

func NewEventLogRepositoryMSSQL(db *sql.DB) repository.IEventLog {
	return &EventLogRepositoryMSSQL{db: db}
}

func (r *EventLogRepositoryMSSQL) Insert(ctx context.Context, e *model.EventLog) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	q := `INSERT INTO dbo.event_logs (event_type, event_action, video_id, comment_id, note_id, user_agent, ip_address, request_data, response_data, status, error_message, created_at)
OUTPUT INSERTED.id
VALUES (@p1,@p2,@p3,@p4,@p5,@p6,@p7,@p8,@p9,@p10,@p11,@p12)`
	if err := r.db.QueryRowContext(ctx, q, eventLogArgs(e)...).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert event log (mssql): %w", err)
	}
	return nil
}

func (r *EventLogRepositoryMSSQL) List(ctx context.Context, filter model.EventLogFilter) ([]model.EventLog, error) {
	where, args := buildEventLogWhere(filter, func(n int) string { return fmt.Sprintf("@p%d", n) })
	args = append(args, eventLimit(filter.Limit))
	q := fmt.Sprintf(`SELECT TOP (@p%d) %s FROM dbo.event_logs%s ORDER BY created_at DESC, id DESC`, len(args), eventLogColumns, where)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list event logs (mssql): %w", err)
	}
	defer rows.Close()
	return scanEventLogs(rows)
}
