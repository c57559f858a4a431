package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetProfile(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/profile")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ProfileResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "u1", envelope.Data.User.ID)
	assert.Equal(t, "Alex Reader", envelope.Data.User.Name)
	assert.Equal(t, "@alexreads", envelope.Data.User.Handle)

	assert.Equal(t, 1, envelope.Data.Stats.Reading)
	assert.Equal(t, 1, envelope.Data.Stats.Completed)
	assert.Equal(t, 1, envelope.Data.Stats.WantToRead)
	assert.Equal(t, 0, envelope.Data.Stats.Owned)
	assert.Equal(t, 3, envelope.Data.Stats.Total)
}

func TestGetProfile_StatsTrackShelfChanges(t *testing.T) {
	ts := setupTestServer(t)

	ts.api.Post("/api/v1/shelf", shelveBody("b9", "Hyperion", "owned"))
	ts.api.Patch("/api/v1/shelf/b2/status", map[string]any{"status": "reading"})

	resp := ts.api.Get("/api/v1/profile")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ProfileResponse](t, resp.Body.Bytes())
	assert.Equal(t, 2, envelope.Data.Stats.Reading)
	assert.Equal(t, 0, envelope.Data.Stats.Completed)
	assert.Equal(t, 1, envelope.Data.Stats.Owned)
	assert.Equal(t, 4, envelope.Data.Stats.Total)
}
