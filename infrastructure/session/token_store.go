package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/logger"
)

// tokenFile mirrors the JSON written by Google's client libraries so an
// existing google_oauth_tokens.json keeps working.
type tokenFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiryDate   int64  `json:"expiry_date,omitempty"`
	ChannelID    string `json:"channel_id,omitempty"`
}

// FileTokenStore keeps the credential pair in memory and mirrors it to disk.
// The file is not locked; a single process owns it.
type FileTokenStore struct {
	mu      sync.RWMutex
	path    string
	current *model.Session
}

// NewFileTokenStore loads path if it exists. A missing or unreadable file
// starts logged out.
func NewFileTokenStore(path string) *FileTokenStore {
	s := &FileTokenStore{path: path}
	current, err := readTokenFile(path)
	switch {
	case err == nil:
		s.current = current
		logger.GetLogger().WithField("path", path).Info("Loaded saved OAuth tokens")
	case errors.Is(err, os.ErrNotExist):
		logger.GetLogger().WithField("path", path).Info("No saved OAuth tokens")
	default:
		logger.GetLogger().WithField("error", err).WithField("path", path).Warn("Ignoring unreadable OAuth token file")
	}
	return s
}

var _ repository.ITokenStore = (*FileTokenStore)(nil)

// Load returns a copy of the current session, or nil when logged out.
func (s *FileTokenStore) Load() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

func (s *FileTokenStore) Save(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	copied := *session
	s.mu.Lock()
	defer s.mu.Unlock()
	if copied.RefreshToken == "" && s.current != nil {
		copied.RefreshToken = s.current.RefreshToken
	}
	if err := writeTokenFile(s.path, &copied); err != nil {
		return err
	}
	s.current = &copied
	return nil
}

// Clear removes the file and forgets the in-memory session.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func readTokenFile(path string) (*model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode token file: %w", err)
	}
	session := &model.Session{
		AccessToken:  f.AccessToken,
		RefreshToken: f.RefreshToken,
		Scope:        f.Scope,
		TokenType:    f.TokenType,
		ChannelID:    f.ChannelID,
	}
	if f.ExpiryDate > 0 {
		session.Expiry = time.UnixMilli(f.ExpiryDate)
	}
	return session, nil
}

func writeTokenFile(path string, session *model.Session) error {
	f := tokenFile{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Scope:        session.Scope,
		TokenType:    session.TokenType,
		ChannelID:    session.ChannelID,
	}
	if !session.Expiry.IsZero() {
		f.ExpiryDate = session.Expiry.UnixMilli()
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
