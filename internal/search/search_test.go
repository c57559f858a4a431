package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readerly/readerly-server/internal/domain"
)

func newTestIndex(t *testing.T) *ShelfIndex {
	t.Helper()
	idx, err := NewShelfIndex(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func indexSeedEntries(t *testing.T, idx *ShelfIndex) {
	t.Helper()
	ctx := context.Background()
	for _, entry := range domain.SeedEntries(time.Now()) {
		require.NoError(t, idx.IndexEntry(ctx, &entry))
	}
}

func TestShelfIndex_SearchByTitle(t *testing.T) {
	idx := newTestIndex(t)
	indexSeedEntries(t, idx)

	result, err := idx.Search(context.Background(), Params{Query: "dune"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "b2", result.Hits[0].ID)
	assert.Equal(t, "Dune", result.Hits[0].Title)
}

func TestShelfIndex_SearchByAuthor(t *testing.T) {
	idx := newTestIndex(t)
	indexSeedEntries(t, idx)

	result, err := idx.Search(context.Background(), Params{Query: "Andy Weir"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "b1", result.Hits[0].ID)
}

func TestShelfIndex_SearchByNotes(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()
	indexSeedEntries(t, idx)

	book := domain.Book{ID: "b9", Title: "Hyperion", Authors: []string{"Dan Simmons"}}
	entry := domain.NewShelfEntry(book, domain.StatusWantToRead, time.Now())
	entry.Notes = "Recommended by the sci-fi bookclub."
	require.NoError(t, idx.IndexEntry(ctx, &entry))

	result, err := idx.Search(ctx, Params{Query: "bookclub"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "b9", result.Hits[0].ID)
}

func TestShelfIndex_StatusFilter(t *testing.T) {
	idx := newTestIndex(t)
	indexSeedEntries(t, idx)

	result, err := idx.Search(context.Background(), Params{Status: string(domain.StatusReading)})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "b1", result.Hits[0].ID)
	assert.Equal(t, "reading", result.Hits[0].Status)
}

func TestShelfIndex_EmptyQueryMatchesAll(t *testing.T) {
	idx := newTestIndex(t)
	indexSeedEntries(t, idx)

	result, err := idx.Search(context.Background(), Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)
}

func TestShelfIndex_ReindexReplacesDocument(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	book := domain.Book{ID: "b9", Title: "Hyperion", Authors: []string{"Dan Simmons"}}
	entry := domain.NewShelfEntry(book, domain.StatusWantToRead, time.Now())
	require.NoError(t, idx.IndexEntry(ctx, &entry))

	entry.Status = domain.StatusReading
	require.NoError(t, idx.IndexEntry(ctx, &entry))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	result, err := idx.Search(ctx, Params{Status: string(domain.StatusReading)})
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
}

func TestShelfIndex_DeleteEntry(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()
	indexSeedEntries(t, idx)

	require.NoError(t, idx.DeleteEntry(ctx, "b2"))

	result, err := idx.Search(ctx, Params{Query: "dune"})
	require.NoError(t, err)
	for _, hit := range result.Hits {
		assert.NotEqual(t, "b2", hit.ID)
	}
}
