package persistence

import (
	"database/sql"
	"fmt"

	"youtube-companion/infrastructure/logger"
)

var postgresSchema = []struct {
	name string
	ddl  string
}{
	{"videos", `CREATE TABLE IF NOT EXISTS videos (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL DEFAULT '',
        description TEXT NOT NULL DEFAULT '',
        thumbnail_url TEXT NOT NULL DEFAULT '',
        view_count BIGINT NOT NULL DEFAULT 0,
        like_count BIGINT NOT NULL DEFAULT 0,
        comment_count BIGINT NOT NULL DEFAULT 0,
        published_at TIMESTAMPTZ NULL,
        duration TEXT NOT NULL DEFAULT '',
        status TEXT NOT NULL DEFAULT '',
        category_id TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`},
	{"comments", `CREATE TABLE IF NOT EXISTS comments (
        id TEXT PRIMARY KEY,
        video_id TEXT NOT NULL,
        author_name TEXT NOT NULL DEFAULT '',
        author_channel_id TEXT NOT NULL DEFAULT '',
        text TEXT NOT NULL DEFAULT '',
        like_count BIGINT NOT NULL DEFAULT 0,
        published_at TIMESTAMPTZ NULL,
        parent_id TEXT NULL REFERENCES comments(id) ON DELETE CASCADE,
        is_owner_comment BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`},
	{"notes", `CREATE TABLE IF NOT EXISTS notes (
        id BIGSERIAL PRIMARY KEY,
        video_id TEXT NOT NULL,
        title TEXT NOT NULL,
        content TEXT NOT NULL DEFAULT '',
        category TEXT NOT NULL DEFAULT 'general' CHECK (category IN ('general','content','thumbnail','title','description','tags')),
        priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low','medium','high')),
        is_completed BOOLEAN NOT NULL DEFAULT FALSE,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`},
	{"event_logs", `CREATE TABLE IF NOT EXISTS event_logs (
        id BIGSERIAL PRIMARY KEY,
        event_type TEXT NOT NULL CHECK (event_type IN ('video','comment','note','auth')),
        event_action TEXT NOT NULL,
        video_id TEXT NULL,
        comment_id TEXT NULL,
        note_id BIGINT NULL,
        user_agent TEXT NOT NULL DEFAULT '',
        ip_address TEXT NOT NULL DEFAULT '',
        request_data TEXT NULL,
        response_data TEXT NULL,
        status TEXT NOT NULL CHECK (status IN ('success','error')),
        error_message TEXT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`},
}

var postgresIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_comments_video_id ON comments(video_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_parent_id ON comments(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_video_id_created_at ON notes(video_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_event_logs_created_at ON event_logs(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_event_logs_video_id ON event_logs(video_id)`,
}

// EnsureSchema creates the tables if they do not exist. Index failures are
// logged and ignored.
func EnsureSchema(db *sql.DB) error {
	for _, t := range postgresSchema {
		if _, err := db.Exec(t.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", t.name, err)
		}
	}
	for _, ddl := range postgresIndexes {
		if _, err := db.Exec(ddl); err != nil {
			logger.GetLogger().WithField("error", err).WithField("ddl", ddl).Warn("failed creating index")
		}
	}
	return nil
}
