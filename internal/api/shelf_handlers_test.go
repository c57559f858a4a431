package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func shelveBody(id, title, status string) map[string]any {
	return map[string]any{
		"book": map[string]any{
			"id":      id,
			"title":   title,
			"authors": []string{"Dan Simmons"},
		},
		"status": status,
	}
}

func TestListShelf_SeededNewestFirst(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/shelf")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListShelfResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, 3, envelope.Data.Total)
	assert.Equal(t, "The Midnight Library", envelope.Data.Entries[0].Title)
	assert.Equal(t, "Project Hail Mary", envelope.Data.Entries[1].Title)
	assert.Equal(t, "Dune", envelope.Data.Entries[2].Title)
}

func TestAddToShelf_CreatesEntryAndPost(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/shelf", shelveBody("b9", "Hyperion", "want_to_read"))
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[AddToShelfResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "b9", envelope.Data.Entry.ID)
	assert.Equal(t, "want_to_read", envelope.Data.Entry.Status)
	assert.Equal(t, "shelf", envelope.Data.NavigateTo)

	assert.Equal(t, "ADD", envelope.Data.Post.Type)
	assert.Equal(t, `Added "Hyperion" to my Want to Read shelf.`, envelope.Data.Post.Content)
	assert.Equal(t, "u1", envelope.Data.Post.UserID)
	assert.Equal(t, "Hyperion", envelope.Data.Post.Book.Title)

	// New book leads the shelf.
	listResp := ts.api.Get("/api/v1/shelf")
	listEnvelope := decodeEnvelope[ListShelfResponse](t, listResp.Body.Bytes())
	assert.Equal(t, 4, listEnvelope.Data.Total)
	assert.Equal(t, "b9", listEnvelope.Data.Entries[0].ID)

	// The ADD post leads the feed.
	feedResp := ts.api.Get("/api/v1/feed")
	feedEnvelope := decodeEnvelope[ListFeedResponse](t, feedResp.Body.Bytes())
	assert.Equal(t, 3, feedEnvelope.Data.Total)
	assert.Equal(t, "ADD", feedEnvelope.Data.Posts[0].Type)
}

func TestAddToShelf_NotesAreKeptAndSearchable(t *testing.T) {
	ts := setupTestServer(t)

	body := shelveBody("b9", "Hyperion", "want_to_read")
	body["notes"] = "Recommended by the sci-fi bookclub."
	resp := ts.api.Post("/api/v1/shelf", body)
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[AddToShelfResponse](t, resp.Body.Bytes())
	assert.Equal(t, "Recommended by the sci-fi bookclub.", envelope.Data.Entry.Notes)

	searchResp := ts.api.Get("/api/v1/shelf/search?q=bookclub")
	searchEnvelope := decodeEnvelope[SearchShelfResponse](t, searchResp.Body.Bytes())
	if assert.NotEmpty(t, searchEnvelope.Data.Entries) {
		assert.Equal(t, "b9", searchEnvelope.Data.Entries[0].ID)
	}
}

func TestAddToShelf_Duplicate(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/shelf", shelveBody("b9", "Hyperion", "reading"))
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/shelf", shelveBody("b9", "Hyperion", "completed"))
	assert.Equal(t, http.StatusConflict, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "ALREADY_EXISTS", envelope.Code)

	// No second post appeared.
	feedResp := ts.api.Get("/api/v1/feed")
	feedEnvelope := decodeEnvelope[ListFeedResponse](t, feedResp.Body.Bytes())
	assert.Equal(t, 3, feedEnvelope.Data.Total)
}

func TestAddToShelf_InvalidStatus(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/shelf", shelveBody("b9", "Hyperion", "wishlist"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION", envelope.Code)
	assert.Contains(t, envelope.Details["status"], "valid shelf status")
}

func TestAddToShelf_MissingBookFields(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/shelf", map[string]any{
		"book":   map[string]any{"id": "", "title": ""},
		"status": "reading",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.Equal(t, "VALIDATION", envelope.Code)
	assert.Contains(t, envelope.Details, "id")
	assert.Contains(t, envelope.Details, "title")
}

func TestUpdateShelfStatus(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Patch("/api/v1/shelf/b2/status", map[string]any{"status": "reading"})
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ShelfEntryResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "reading", envelope.Data.Status)
	// Other fields survive the move.
	assert.Equal(t, "Dune", envelope.Data.Title)
	assert.Equal(t, 100, envelope.Data.Progress)

	// No feed post and no reordering.
	feedResp := ts.api.Get("/api/v1/feed")
	feedEnvelope := decodeEnvelope[ListFeedResponse](t, feedResp.Body.Bytes())
	assert.Equal(t, 2, feedEnvelope.Data.Total)

	listResp := ts.api.Get("/api/v1/shelf")
	listEnvelope := decodeEnvelope[ListShelfResponse](t, listResp.Body.Bytes())
	assert.Equal(t, "b2", listEnvelope.Data.Entries[2].ID)
}

func TestUpdateShelfStatus_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Patch("/api/v1/shelf/missing/status", map[string]any{"status": "reading"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	envelope := decodeEnvelope[struct{}](t, resp.Body.Bytes())
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestSearchShelf(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/shelf/search?q=dune")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[SearchShelfResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "b2", envelope.Data.Entries[0].ID)
}

func TestSearchShelf_StatusFilter(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/shelf/search?status=reading")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[SearchShelfResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "Project Hail Mary", envelope.Data.Entries[0].Title)
}
