// Package client is a typed client for the dashboard HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer decoded from the response envelope.
type APIError struct {
	Status  int
	Message string
	Err     string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Err != "" && e.Err != msg {
		return fmt.Sprintf("api error %d: %s: %s", e.Status, msg, e.Err)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, msg)
}

var authFailures = []string{"not logged in", "login required", "invalid credentials", "unauthorized"}

// IsAuthRequired reports whether err means the operator has to log in again.
func IsAuthRequired(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status == http.StatusUnauthorized {
		return true
	}
	text := strings.ToLower(apiErr.Message + " " + apiErr.Err)
	for _, f := range authFailures {
		if strings.Contains(text, f) {
			return true
		}
	}
	return false
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoginURL is where the browser goes to start the OAuth flow.
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/google"
}

type commentsQuery struct {
	MaxResults int64 `url:"maxResults,omitempty"`
}

type categoryQuery struct {
	Category string `url:"category"`
}

type priorityQuery struct {
	Priority string `url:"priority"`
}

// EventQuery filters GET /api/events.
type EventQuery struct {
	EventType string `url:"eventType,omitempty"`
	VideoID   string `url:"videoId,omitempty"`
	StartDate string `url:"startDate,omitempty"`
	EndDate   string `url:"endDate,omitempty"`
	Limit     int    `url:"limit,omitempty"`
}

func (c *Client) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	var video model.Video
	if err := c.do(ctx, http.MethodGet, "/api/videos/"+url.PathEscape(videoID), nil, nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) UpdateVideo(ctx context.Context, videoID string, req dto.VideoUpdateRequest) (*model.Video, error) {
	var video model.Video
	if err := c.do(ctx, http.MethodPut, "/api/videos/"+url.PathEscape(videoID), nil, req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) GetComments(ctx context.Context, videoID string, maxResults int64) ([]model.Comment, error) {
	var comments []model.Comment
	path := "/api/videos/" + url.PathEscape(videoID) + "/comments"
	if err := c.do(ctx, http.MethodGet, path, commentsQuery{MaxResults: maxResults}, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) AddComment(ctx context.Context, videoID, text string) (*model.Comment, error) {
	var comment model.Comment
	path := "/api/videos/" + url.PathEscape(videoID) + "/comments"
	if err := c.do(ctx, http.MethodPost, path, nil, dto.CommentRequest{Text: text}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) AddReply(ctx context.Context, commentID, text string) (*model.Comment, error) {
	var reply model.Comment
	path := "/api/videos/comments/" + url.PathEscape(commentID) + "/replies"
	if err := c.do(ctx, http.MethodPost, path, nil, dto.CommentRequest{Text: text}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/videos/comments/"+url.PathEscape(commentID), nil, nil, nil)
}

func (c *Client) DeleteReply(ctx context.Context, replyID string) error {
	return c.do(ctx, http.MethodDelete, "/api/videos/comments/"+url.PathEscape(replyID)+"/reply", nil, nil, nil)
}

func (c *Client) ListNotes(ctx context.Context, videoID string) ([]model.Note, error) {
	var notes []model.Note
	if err := c.do(ctx, http.MethodGet, "/api/"+url.PathEscape(videoID)+"/notes", nil, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) ListNotesByCategory(ctx context.Context, videoID string, category model.NoteCategory) ([]model.Note, error) {
	var notes []model.Note
	path := "/api/" + url.PathEscape(videoID) + "/notes/category"
	if err := c.do(ctx, http.MethodGet, path, categoryQuery{Category: string(category)}, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) ListNotesByPriority(ctx context.Context, videoID string, priority model.NotePriority) ([]model.Note, error) {
	var notes []model.Note
	path := "/api/" + url.PathEscape(videoID) + "/notes/priority"
	if err := c.do(ctx, http.MethodGet, path, priorityQuery{Priority: string(priority)}, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, noteID int64) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodGet, notePath(noteID), nil, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, videoID string, req dto.NoteCreateRequest) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodPost, "/api/"+url.PathEscape(videoID)+"/notes", nil, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) UpdateNote(ctx context.Context, noteID int64, req dto.NoteUpdateRequest) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodPut, notePath(noteID), nil, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) DeleteNote(ctx context.Context, noteID int64) error {
	return c.do(ctx, http.MethodDelete, notePath(noteID), nil, nil, nil)
}

// ToggleNote asks the server to flip the completion flag.
func (c *Client) ToggleNote(ctx context.Context, noteID int64) (*model.Note, error) {
	var note model.Note
	if err := c.do(ctx, http.MethodPatch, notePath(noteID)+"/toggle", nil, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) ListEvents(ctx context.Context, q EventQuery) ([]model.EventLog, error) {
	var events []model.EventLog
	if err := c.do(ctx, http.MethodGet, "/api/events", q, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// UserInfo answers with the bare profile, not the envelope.
func (c *Client) UserInfo(ctx context.Context) (*model.UserInfo, error) {
	body, err := c.send(ctx, http.MethodGet, "/api/userinfo", nil, nil)
	if err != nil {
		return nil, err
	}
	var info model.UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parse user info: %w", err)
	}
	return &info, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	body, err := c.send(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}
	var health dto.HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("parse health: %w", err)
	}
	return &health, nil
}

func notePath(noteID int64) string {
	return "/api/notes/" + strconv.FormatInt(noteID, 10)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do sends the request and decodes the envelope's data into out when out is
// not nil.
func (c *Client) do(ctx context.Context, method, path string, params, payload, out interface{}) error {
	body, err := c.send(ctx, method, path, params, payload)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("parse response data: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, params, payload interface{}) ([]byte, error) {
	target := c.baseURL + path
	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		if encoded := values.Encode(); encoded != "" {
			target += "?" + encoded
		}
	}

	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env envelope
		if json.Unmarshal(body, &env) == nil {
			apiErr.Message = env.Message
			apiErr.Err = env.Error
		}
		return nil, apiErr
	}
	return body, nil
}
