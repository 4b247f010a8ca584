package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	t        *testing.T
	requests []string
	bodies   map[string]map[string]interface{}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	if r.Body != nil {
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			var body map[string]interface{}
			require.NoError(f.t, json.Unmarshal(raw, &body))
			f.bodies[r.Method+" "+r.URL.Path] = body
		}
	}
	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path
	switch {
	case strings.HasSuffix(path, "/youtube/v3/videos") && r.Method == http.MethodGet:
		if r.URL.Query().Get("id") == "missing" {
			_, _ = w.Write([]byte(`{"items":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"vid1",
			"snippet":{"title":"Old","description":"Desc","categoryId":"22","publishedAt":"2024-05-01T10:00:00Z",
				"thumbnails":{"default":{"url":"https://img/d.jpg"},"medium":{"url":"https://img/m.jpg"}}},
			"statistics":{"viewCount":"1200","likeCount":"34","commentCount":"5"},
			"contentDetails":{"duration":"PT4M13S"},
			"status":{"privacyStatus":"unlisted"}}]}`))
	case strings.HasSuffix(path, "/youtube/v3/videos") && r.Method == http.MethodPut:
		_, _ = w.Write([]byte(`{"id":"vid1","snippet":{"title":"New","description":"Desc","categoryId":"22"}}`))
	case strings.HasSuffix(path, "/youtube/v3/commentThreads") && r.Method == http.MethodGet:
		_, _ = w.Write([]byte(`{"items":[{"id":"c1","snippet":{"videoId":"vid1",
			"topLevelComment":{"id":"c1","snippet":{"authorDisplayName":"Viewer","authorChannelId":{"value":"UCviewer"},"textDisplay":"Nice","likeCount":3,"publishedAt":"2024-05-02T10:00:00Z"}}},
			"replies":{"comments":[{"id":"c1.r1","snippet":{"authorDisplayName":"Owner","authorChannelId":{"value":"UCowner"},"textDisplay":"Thanks","parentId":"c1"}}]}}]}`))
	case strings.HasSuffix(path, "/youtube/v3/commentThreads") && r.Method == http.MethodPost:
		_, _ = w.Write([]byte(`{"id":"c2","snippet":{"videoId":"vid1","topLevelComment":{"id":"c2","snippet":{"authorDisplayName":"Owner","authorChannelId":{"value":"UCowner"},"textOriginal":"Hello"}}}}`))
	case strings.HasSuffix(path, "/youtube/v3/comments") && r.Method == http.MethodPost:
		_, _ = w.Write([]byte(`{"id":"c1.r2","snippet":{"authorDisplayName":"Owner","textOriginal":"Reply","parentId":"c1"}}`))
	case strings.HasSuffix(path, "/youtube/v3/comments") && r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	case strings.HasSuffix(path, "/youtube/v3/channels"):
		_, _ = w.Write([]byte(`{"items":[{"id":"UCme"}]}`))
	case strings.HasSuffix(path, "/oauth2/v2/userinfo"):
		_, _ = w.Write([]byte(`{"name":"Jo","picture":"https://img/avatar.png","email":"jo@example.com"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"unexpected path"}}`))
	}
}

func newTestProvider(t *testing.T, store repository.ITokenStore) (*Provider, *fakeAPI) {
	api := &fakeAPI{t: t, bodies: map[string]map[string]interface{}{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	p := NewProvider(Config{APIKey: "key", ChannelID: "UCowner"}, store)
	p.endpoint = srv.URL + "/"
	return p, api
}

func TestClient_GetVideo(t *testing.T) {
	p, _ := newTestProvider(t, nil)
	client, err := p.ForSession(context.Background(), nil)
	require.NoError(t, err)

	video, err := client.GetVideo(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "Old", video.Title)
	assert.Equal(t, "https://img/m.jpg", video.ThumbnailURL, "medium is used when high is absent")
	assert.Equal(t, int64(1200), video.ViewCount)
	assert.Equal(t, int64(34), video.LikeCount)
	assert.Equal(t, int64(5), video.CommentCount)
	assert.Equal(t, "PT4M13S", video.Duration)
	assert.Equal(t, "unlisted", video.Status)
	assert.Equal(t, "22", video.CategoryID)
	require.NotNil(t, video.PublishedAt)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), video.PublishedAt.UTC())

	_, err = client.GetVideo(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrVideoNotFound)
}

func TestClient_UpdateVideoSnippet_SendsFullSnippet(t *testing.T) {
	p, api := newTestProvider(t, nil)
	client, err := p.ForSession(context.Background(), nil)
	require.NoError(t, err)

	video, err := client.UpdateVideoSnippet(context.Background(), "vid1", "New", "Desc", "22")
	require.NoError(t, err)
	assert.Equal(t, "New", video.Title)

	var body map[string]interface{}
	for k, v := range api.bodies {
		if strings.HasPrefix(k, http.MethodPut) {
			body = v
		}
	}
	require.NotNil(t, body)
	snippet := body["snippet"].(map[string]interface{})
	assert.Equal(t, "New", snippet["title"])
	assert.Equal(t, "Desc", snippet["description"])
	assert.Equal(t, "22", snippet["categoryId"])
}

func TestClient_ListComments_MapsRepliesAndOwner(t *testing.T) {
	p, _ := newTestProvider(t, nil)
	client, err := p.ForSession(context.Background(), nil)
	require.NoError(t, err)

	comments, err := client.ListComments(context.Background(), "vid1", 500)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	top := comments[0]
	assert.Equal(t, "c1", top.ID)
	assert.Equal(t, "vid1", top.VideoID)
	assert.Equal(t, "Nice", top.Text)
	assert.False(t, top.IsOwnerComment)
	assert.Nil(t, top.ParentID)
	require.Len(t, top.Replies, 1)

	reply := top.Replies[0]
	assert.Equal(t, "vid1", reply.VideoID, "replies inherit the thread's video")
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, "c1", *reply.ParentID)
	assert.True(t, reply.IsOwnerComment)
}

func TestClient_InsertCommentAndReply(t *testing.T) {
	p, _ := newTestProvider(t, nil)
	client, err := p.ForSession(context.Background(), nil)
	require.NoError(t, err)

	comment, err := client.InsertComment(context.Background(), "vid1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "c2", comment.ID)
	assert.Equal(t, "vid1", comment.VideoID)
	assert.Equal(t, "Hello", comment.Text)
	assert.True(t, comment.IsOwnerComment)

	reply, err := client.InsertReply(context.Background(), "c1", "Reply")
	require.NoError(t, err)
	assert.Equal(t, "c1.r2", reply.ID)
	assert.Empty(t, reply.VideoID, "provider omitted videoId")
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, "c1", *reply.ParentID)

	require.NoError(t, client.DeleteComment(context.Background(), "c1.r2"))
}

func TestProvider_OAuthSessionServesUserInfo(t *testing.T) {
	p, api := newTestProvider(t, &memoryStore{})
	session := &model.Session{AccessToken: "at", RefreshToken: "rt", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour), ChannelID: "UCme"}

	client, err := p.ForSession(context.Background(), session)
	require.NoError(t, err)

	info, err := client.UserInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.UserInfo{Name: "Jo", AvatarURL: "https://img/avatar.png", Email: "jo@example.com", ChannelID: "UCme"}, info)
	assert.Contains(t, api.requests, "GET /oauth2/v2/userinfo")
}

func TestProvider_NoCredentials(t *testing.T) {
	p := NewProvider(Config{}, nil)
	_, err := p.ForSession(context.Background(), nil)
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}

func TestClient_UserInfoRequiresOAuth(t *testing.T) {
	p, _ := newTestProvider(t, nil)
	client, err := p.ForSession(context.Background(), nil)
	require.NoError(t, err)

	_, err = client.UserInfo(context.Background())
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}
