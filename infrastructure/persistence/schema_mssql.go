package persistence

import (
	"database/sql"
	"fmt"

	"youtube-companion/infrastructure/logger"
)

var mssqlSchema = []struct {
	name string
	ddl  string
}{
	{"videos", `CREATE TABLE dbo.videos (
        id NVARCHAR(64) NOT NULL PRIMARY KEY,
        title NVARCHAR(200) NOT NULL DEFAULT '',
        description NVARCHAR(MAX) NOT NULL DEFAULT '',
        thumbnail_url NVARCHAR(1024) NOT NULL DEFAULT '',
        view_count BIGINT NOT NULL DEFAULT 0,
        like_count BIGINT NOT NULL DEFAULT 0,
        comment_count BIGINT NOT NULL DEFAULT 0,
        published_at DATETIMEOFFSET NULL,
        duration NVARCHAR(64) NOT NULL DEFAULT '',
        status NVARCHAR(32) NOT NULL DEFAULT '',
        category_id NVARCHAR(16) NOT NULL DEFAULT '',
        created_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET(),
        updated_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET()
    )`},
	// SQL Server rejects cascading self references, so replies are removed by
	// the delete statement itself.
	{"comments", `CREATE TABLE dbo.comments (
        id NVARCHAR(128) NOT NULL PRIMARY KEY,
        video_id NVARCHAR(64) NOT NULL,
        author_name NVARCHAR(255) NOT NULL DEFAULT '',
        author_channel_id NVARCHAR(128) NOT NULL DEFAULT '',
        text NVARCHAR(MAX) NOT NULL DEFAULT '',
        like_count BIGINT NOT NULL DEFAULT 0,
        published_at DATETIMEOFFSET NULL,
        parent_id NVARCHAR(128) NULL REFERENCES dbo.comments(id),
        is_owner_comment BIT NOT NULL DEFAULT 0,
        created_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET(),
        updated_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET()
    )`},
	{"notes", `CREATE TABLE dbo.notes (
        id BIGINT IDENTITY(1,1) NOT NULL PRIMARY KEY,
        video_id NVARCHAR(64) NOT NULL,
        title NVARCHAR(255) NOT NULL,
        content NVARCHAR(MAX) NOT NULL DEFAULT '',
        category NVARCHAR(16) NOT NULL DEFAULT 'general',
        priority NVARCHAR(8) NOT NULL DEFAULT 'medium',
        is_completed BIT NOT NULL DEFAULT 0,
        created_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET(),
        updated_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET()
    )`},
	{"event_logs", `CREATE TABLE dbo.event_logs (
        id BIGINT IDENTITY(1,1) NOT NULL PRIMARY KEY,
        event_type NVARCHAR(16) NOT NULL,
        event_action NVARCHAR(64) NOT NULL,
        video_id NVARCHAR(64) NULL,
        comment_id NVARCHAR(128) NULL,
        note_id BIGINT NULL,
        user_agent NVARCHAR(512) NOT NULL DEFAULT '',
        ip_address NVARCHAR(64) NOT NULL DEFAULT '',
        request_data NVARCHAR(MAX) NULL,
        response_data NVARCHAR(MAX) NULL,
        status NVARCHAR(16) NOT NULL,
        error_message NVARCHAR(MAX) NULL,
        created_at DATETIMEOFFSET NOT NULL DEFAULT SYSDATETIMEOFFSET()
    )`},
}

// EnsureSchemaMSSQL creates the tables on SQL Server if not exists.
func EnsureSchemaMSSQL(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	for _, t := range mssqlSchema {
		q := fmt.Sprintf(`IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.%s') AND type in (N'U'))
BEGIN
    %s
END`, t.name, t.ddl)
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("create %s table (mssql): %w", t.name, err)
		}
	}
	if _, err := db.Exec(`IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name = 'idx_notes_video_id' AND object_id = OBJECT_ID('dbo.notes'))
CREATE INDEX idx_notes_video_id ON dbo.notes(video_id, created_at DESC)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_notes_video_id")
	}
	return nil
}
