package api

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFeed_Seeded(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/feed")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListFeedResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	require.Equal(t, 2, envelope.Data.Total)

	assert.Equal(t, "p1", envelope.Data.Posts[0].ID)
	assert.Equal(t, "REVIEW", envelope.Data.Posts[0].Type)
	assert.Equal(t, 12, envelope.Data.Posts[0].Likes)
	assert.Equal(t, "Sarah Jenkins", envelope.Data.Posts[0].User.Name)

	assert.Equal(t, "p2", envelope.Data.Posts[1].ID)
	assert.Equal(t, "UPDATE", envelope.Data.Posts[1].Type)
	require.NotNil(t, envelope.Data.Posts[1].Book)
	assert.Equal(t, "Moby Dick", envelope.Data.Posts[1].Book.Title)
}

func TestListFeed_Pagination(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/feed?limit=1")
	envelope := decodeEnvelope[ListFeedResponse](t, resp.Body.Bytes())
	require.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "p1", envelope.Data.Posts[0].ID)

	cursor := url.QueryEscape(envelope.Data.Posts[0].Timestamp.Format(time.RFC3339Nano))
	resp = ts.api.Get("/api/v1/feed?limit=1&before=" + cursor)
	envelope = decodeEnvelope[ListFeedResponse](t, resp.Body.Bytes())
	require.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "p2", envelope.Data.Posts[0].ID)
}

func TestListFeed_BadCursor(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/feed?before=yesterday")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.Equal(t, "VALIDATION", envelope.Code)
}

func TestCreatePost_TaggedShelfBook(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/feed", map[string]any{
		"content":        "Loved every page.",
		"tagged_book_id": "b2",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "REVIEW", envelope.Data.Type)
	assert.Equal(t, "Loved every page.", envelope.Data.Content)
	require.NotNil(t, envelope.Data.Book)
	assert.Equal(t, "Dune", envelope.Data.Book.Title)
	assert.Equal(t, 0, envelope.Data.Likes)
}

func TestCreatePost_UnknownTagDegradesToUpdate(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/feed", map[string]any{
		"content":        "Thinking about my next read.",
		"tagged_book_id": "nope",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostResponse](t, resp.Body.Bytes())
	assert.Equal(t, "UPDATE", envelope.Data.Type)
	assert.Nil(t, envelope.Data.Book)
}

func TestCreatePost_EmptyContent(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/feed", map[string]any{"content": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION", envelope.Code)
}

func TestLikePost(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/feed/p1/like", map[string]any{})
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[PostResponse](t, resp.Body.Bytes())
	assert.Equal(t, 13, envelope.Data.Likes)

	resp = ts.api.Post("/api/v1/feed/p1/like", map[string]any{})
	envelope = decodeEnvelope[PostResponse](t, resp.Body.Bytes())
	assert.Equal(t, 14, envelope.Data.Likes)
}
