package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
)

const (
	eventLogColumns    = `id, event_type, event_action, video_id, comment_id, note_id, user_agent, ip_address, request_data, response_data, status, error_message, created_at`
	defaultEventLimit  = 100
	maxEventQueryLimit = 1000
)

type EventLogRepository struct{ db *sql.DB }

func NewEventLogRepository(db *sql.DB) repository.IEventLog {
	return &EventLogRepository{db: db}
}

func (r *EventLogRepository) Insert(ctx context.Context, e *model.EventLog) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	q := `INSERT INTO event_logs (event_type, event_action, video_id, comment_id, note_id, user_agent, ip_address, request_data, response_data, status, error_message, created_at)
          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`
	err := r.db.QueryRowContext(ctx, q, eventLogArgs(e)...).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert event log: %w", err)
	}
	return nil
}

func (r *EventLogRepository) List(ctx context.Context, filter model.EventLogFilter) ([]model.EventLog, error) {
	where, args := buildEventLogWhere(filter, func(n int) string { return fmt.Sprintf("$%d", n) })
	args = append(args, eventLimit(filter.Limit))
	q := fmt.Sprintf(`SELECT %s FROM event_logs%s ORDER BY created_at DESC, id DESC LIMIT $%d`, eventLogColumns, where, len(args))
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list event logs: %w", err)
	}
	defer rows.Close()
	return scanEventLogs(rows)
}

func eventLogArgs(e *model.EventLog) []any {
	return []any{
		string(e.EventType), e.EventAction, nullStringPtr(e.VideoID), nullStringPtr(e.CommentID), nullInt64Ptr(e.NoteID),
		e.UserAgent, e.IPAddress, nullString(e.RequestData), nullString(e.ResponseData), string(e.Status),
		nullStringPtr(e.ErrorMessage), e.CreatedAt,
	}
}

func eventLimit(limit int) int {
	if limit <= 0 {
		return defaultEventLimit
	}
	if limit > maxEventQueryLimit {
		return maxEventQueryLimit
	}
	return limit
}

func buildEventLogWhere(filter model.EventLogFilter, placeholder func(int) string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, cond+placeholder(len(args)))
	}
	if filter.EventType != "" {
		add("event_type = ", string(filter.EventType))
	}
	if filter.VideoID != "" {
		add("video_id = ", filter.VideoID)
	}
	if filter.StartDate != nil {
		add("created_at >= ", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		add("created_at <= ", filter.EndDate.UTC())
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanEventLogs(rows *sql.Rows) ([]model.EventLog, error) {
	events := make([]model.EventLog, 0)
	for rows.Next() {
		var (
			e                          model.EventLog
			eventType, status          string
			videoID, commentID, errMsg sql.NullString
			requestData, responseData  sql.NullString
			noteID                     sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &eventType, &e.EventAction, &videoID, &commentID, &noteID, &e.UserAgent, &e.IPAddress,
			&requestData, &responseData, &status, &errMsg, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.EventType = model.EventType(eventType)
		e.Status = model.EventStatus(status)
		e.VideoID = stringPtr(videoID)
		e.CommentID = stringPtr(commentID)
		e.ErrorMessage = stringPtr(errMsg)
		e.RequestData = requestData.String
		e.ResponseData = responseData.String
		if noteID.Valid {
			v := noteID.Int64
			e.NoteID = &v
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
