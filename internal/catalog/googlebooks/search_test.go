package googlebooks

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readerly/readerly-server/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Options{
		BaseURL:    srv.URL,
		MaxResults: 10,
		Timeout:    5 * time.Second,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return c, &calls
}

const sampleResponse = `{
	"totalItems": 2,
	"items": [
		{
			"id": "zH4tEAAAQBAJ",
			"volumeInfo": {
				"title": "Project Hail Mary",
				"authors": ["Andy Weir"],
				"description": "A lone astronaut must save the earth.",
				"imageLinks": {"thumbnail": "http://books.google.com/books/content?id=zH4tEAAAQBAJ"},
				"pageCount": 496,
				"categories": ["Science Fiction"],
				"publishedDate": "2021-05-04",
				"industryIdentifiers": [
					{"type": "ISBN_13", "identifier": "9780593135204"},
					{"type": "ISBN_10", "identifier": "0593135202"}
				]
			}
		},
		{
			"id": "anon123",
			"volumeInfo": {
				"title": "Anonymous Pamphlet"
			}
		}
	]
}`

func TestSearch_NormalizesResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "hail mary", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("maxResults"))
		_, _ = w.Write([]byte(sampleResponse))
	})

	books := c.Search(context.Background(), "hail mary")
	require.Len(t, books, 2)

	// Source order is preserved.
	first := books[0]
	assert.Equal(t, "zH4tEAAAQBAJ", first.ID)
	assert.Equal(t, "Project Hail Mary", first.Title)
	assert.Equal(t, []string{"Andy Weir"}, first.Authors)
	assert.Equal(t, "https://books.google.com/books/content?id=zH4tEAAAQBAJ", first.Thumbnail, "http is upgraded to https")
	assert.Equal(t, "9780593135204", first.ISBN, "first industry identifier wins")
	assert.Equal(t, 496, first.PageCount)

	// Missing fields get defaults.
	second := books[1]
	assert.Equal(t, []string{domain.UnknownAuthor}, second.Authors)
	assert.Empty(t, second.Thumbnail)
	assert.Empty(t, second.ISBN)
}

func TestSearch_StripsNullBytesFromText(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [
				{
					"id": "bad1",
					"volumeInfo": {
						"title": "Dune\u0000",
						"authors": ["Frank\u0000 Herbert"],
						"description": "Spice\u0000 and sand."
					}
				}
			]
		}`))
	})

	books := c.Search(context.Background(), "dune")
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, []string{"Frank Herbert"}, books[0].Authors)
	assert.Equal(t, "Spice and sand.", books[0].Description)
}

func TestSearch_BlankQueryMakesNoCall(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleResponse))
	})

	assert.Empty(t, c.Search(context.Background(), ""))
	assert.Empty(t, c.Search(context.Background(), "   "))
	assert.EqualValues(t, 0, calls.Load())
}

func TestSearch_MissingItemsIsZeroResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	})

	books := c.Search(context.Background(), "nothing matches this")
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestSearch_ServerErrorReturnsEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	books := c.Search(context.Background(), "dune")
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestSearch_MalformedBodyReturnsEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not json"))
	})

	assert.Empty(t, c.Search(context.Background(), "dune"))
}

func TestSearch_TransportErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Connection refused from here on.

	c := NewClient(Options{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Empty(t, c.Search(context.Background(), "dune"))
}
