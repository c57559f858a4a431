package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readerly/readerly-server/internal/config"
	"github.com/readerly/readerly-server/internal/domain"
	"github.com/readerly/readerly-server/internal/search"
	"github.com/readerly/readerly-server/internal/service"
	"github.com/readerly/readerly-server/internal/store"
)

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	V       int               `json:"v"`
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
}

// fakeSearcher returns canned catalog results.
type fakeSearcher struct {
	books []domain.Book
}

func (f *fakeSearcher) Search(_ context.Context, query string) []domain.Book {
	if query == "" {
		return []domain.Book{}
	}
	return f.books
}

// fakeRecommender returns canned recommendations.
type fakeRecommender struct {
	available bool
	books     []domain.Book
	reason    string
	summary   string
}

func (f *fakeRecommender) Available() bool { return f.available }

func (f *fakeRecommender) Recommend(context.Context, string, []domain.Book) ([]domain.Book, string) {
	return f.books, f.reason
}

func (f *fakeRecommender) Summarize(context.Context, string, string) string {
	return f.summary
}

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

func setupTestServer(t *testing.T) *testServer {
	return setupTestServerWith(t, &fakeSearcher{}, &fakeRecommender{})
}

func setupTestServerWith(t *testing.T, searcher service.BookSearcher, recommender service.Recommender) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	index, err := search.NewShelfIndex(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	st.SetSearchIndexer(index)
	require.NoError(t, st.Seed(context.Background(), time.Now()))

	services := &Services{
		Shelf:    service.NewShelfService(st, index, logger),
		Feed:     service.NewFeedService(st, logger),
		Discover: service.NewDiscoverService(searcher, recommender, st, logger),
		Profile:  service.NewProfileService(st),
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Name:        "Readerly Test",
			CORSOrigins: []string{"*"},
		},
	}

	s := NewServer(cfg, st, services, logger)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

func decodeEnvelope[T any](t *testing.T, body []byte) testEnvelope[T] {
	t.Helper()
	var envelope testEnvelope[T]
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[HealthResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, envelope.V)
	assert.True(t, envelope.Success)
	assert.Equal(t, "healthy", envelope.Data.Status)
	assert.Equal(t, "healthy", envelope.Data.Components["database"].Status)
	assert.Equal(t, "healthy", envelope.Data.Components["search"].Status)
}

func TestEnvelope_FailureShape(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/feed/nope/like", map[string]any{})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.Equal(t, 1, envelope.V)
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.NotEmpty(t, envelope.Error)
}
