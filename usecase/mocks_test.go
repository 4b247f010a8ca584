package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/audit"
)

type MockEventLogger struct{ mock.Mock }

func (m *MockEventLogger) Log(ctx context.Context, entry audit.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

// entries returns every Entry passed to Log, in order.
func (m *MockEventLogger) entries() []audit.Entry {
	var out []audit.Entry
	for _, c := range m.Calls {
		if c.Method == "Log" {
			out = append(out, c.Arguments.Get(1).(audit.Entry))
		}
	}
	return out
}

func newEventLogger() *MockEventLogger {
	m := new(MockEventLogger)
	m.On("Log", mock.Anything, mock.Anything).Return(nil)
	return m
}

type MockNoteRepository struct{ mock.Mock }

func (m *MockNoteRepository) ListByVideo(ctx context.Context, videoID string, filter model.NoteFilter) ([]model.Note, error) {
	args := m.Called(ctx, videoID, filter)
	notes, _ := args.Get(0).([]model.Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) Get(ctx context.Context, noteID int64) (*model.Note, error) {
	args := m.Called(ctx, noteID)
	note, _ := args.Get(0).(*model.Note)
	return note, args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *model.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, noteID int64) error {
	return m.Called(ctx, noteID).Error(0)
}

func (m *MockNoteRepository) ToggleCompleted(ctx context.Context, noteID int64) (*model.Note, error) {
	args := m.Called(ctx, noteID)
	note, _ := args.Get(0).(*model.Note)
	return note, args.Error(1)
}

type MockVideoRepository struct{ mock.Mock }

func (m *MockVideoRepository) Upsert(ctx context.Context, video *model.Video) error {
	return m.Called(ctx, video).Error(0)
}

type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) Upsert(ctx context.Context, comment *model.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Get(ctx context.Context, commentID string) (*model.Comment, error) {
	args := m.Called(ctx, commentID)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

type MockYouTube struct{ mock.Mock }

func (m *MockYouTube) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	args := m.Called(ctx, videoID)
	v, _ := args.Get(0).(*model.Video)
	return v, args.Error(1)
}

func (m *MockYouTube) UpdateVideoSnippet(ctx context.Context, videoID, title, description, categoryID string) (*model.Video, error) {
	args := m.Called(ctx, videoID, title, description, categoryID)
	v, _ := args.Get(0).(*model.Video)
	return v, args.Error(1)
}

func (m *MockYouTube) ListComments(ctx context.Context, videoID string, maxResults int64) ([]model.Comment, error) {
	args := m.Called(ctx, videoID, maxResults)
	c, _ := args.Get(0).([]model.Comment)
	return c, args.Error(1)
}

func (m *MockYouTube) InsertComment(ctx context.Context, videoID, text string) (*model.Comment, error) {
	args := m.Called(ctx, videoID, text)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *MockYouTube) InsertReply(ctx context.Context, parentID, text string) (*model.Comment, error) {
	args := m.Called(ctx, parentID, text)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *MockYouTube) DeleteComment(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

func (m *MockYouTube) MyChannelID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockYouTube) UserInfo(ctx context.Context) (*model.UserInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*model.UserInfo)
	return info, args.Error(1)
}

type MockProvider struct{ mock.Mock }

func (m *MockProvider) ForSession(ctx context.Context, session *model.Session) (repository.IYouTube, error) {
	args := m.Called(ctx, session)
	yt, _ := args.Get(0).(repository.IYouTube)
	return yt, args.Error(1)
}

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) Load() *model.Session {
	s, _ := m.Called().Get(0).(*model.Session)
	return s
}

func (m *MockTokenStore) Save(session *model.Session) error {
	return m.Called(session).Error(0)
}

func (m *MockTokenStore) Clear() error {
	return m.Called().Error(0)
}

type MockUserInfoCache struct{ mock.Mock }

func (m *MockUserInfoCache) Get(ctx context.Context, key string) (*model.UserInfo, error) {
	args := m.Called(ctx, key)
	info, _ := args.Get(0).(*model.UserInfo)
	return info, args.Error(1)
}

func (m *MockUserInfoCache) Set(ctx context.Context, key string, info *model.UserInfo, ttl time.Duration) error {
	return m.Called(ctx, key, info, ttl).Error(0)
}

func (m *MockUserInfoCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockEventLogRepository struct{ mock.Mock }

func (m *MockEventLogRepository) Insert(ctx context.Context, event *model.EventLog) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventLogRepository) List(ctx context.Context, filter model.EventLogFilter) ([]model.EventLog, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]model.EventLog)
	return rows, args.Error(1)
}
