package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Params configures a shelf search.
type Params struct {
	Query  string // User's search text
	Status string // Optional exact shelf status filter
	Limit  int
	Offset int
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{Limit: 20}
}

// Result holds shelf search results.
type Result struct {
	Query  string `json:"query"`
	Total  uint64 `json:"total"`
	TookMs int64  `json:"took_ms"`
	Hits   []Hit  `json:"hits"`
}

// Hit is a single matching shelf entry.
type Hit struct {
	ID         string            `json:"id"`
	Score      float64           `json:"score"`
	Title      string            `json:"title"`
	Authors    string            `json:"authors,omitempty"`
	Categories string            `json:"categories,omitempty"`
	Status     string            `json:"status"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Search executes a shelf search. Results are relevance-ordered.
func (s *ShelfIndex) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		params.Limit = DefaultParams().Limit
	}

	searchRequest := bleve.NewSearchRequestOptions(buildQuery(params), params.Limit, params.Offset, false)
	searchRequest.Fields = []string{"id", "title", "authors", "categories", "status"}
	searchRequest.Highlight = bleve.NewHighlight()
	searchRequest.Highlight.AddField("title")

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		h := Hit{
			ID:    hit.ID,
			Score: hit.Score,
		}
		if t, ok := hit.Fields["title"].(string); ok {
			h.Title = t
		}
		if a, ok := hit.Fields["authors"].(string); ok {
			h.Authors = a
		}
		if c, ok := hit.Fields["categories"].(string); ok {
			h.Categories = c
		}
		if st, ok := hit.Fields["status"].(string); ok {
			h.Status = st
		}
		if len(hit.Fragments) > 0 {
			h.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					h.Highlights[field] = fragments[0]
				}
			}
		}
		result.Hits = append(result.Hits, h)
	}

	return result, nil
}

// buildQuery constructs the Bleve query from params.
func buildQuery(params Params) query.Query {
	var must []query.Query

	if params.Query != "" {
		// Title match with highest boost, then authors, then the rest.
		titleMatch := bleve.NewMatchQuery(params.Query)
		titleMatch.SetField("title")
		titleMatch.SetBoost(3.0)

		authorsMatch := bleve.NewMatchQuery(params.Query)
		authorsMatch.SetField("authors")
		authorsMatch.SetBoost(2.0)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")

		categoriesMatch := bleve.NewMatchQuery(params.Query)
		categoriesMatch.SetField("categories")

		notesMatch := bleve.NewMatchQuery(params.Query)
		notesMatch.SetField("notes")

		// Fuzzy title match for typo tolerance.
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("title")
		fuzzyQuery.SetBoost(0.8)

		must = append(must, bleve.NewDisjunctionQuery(titleMatch, authorsMatch, descMatch, categoriesMatch, notesMatch, fuzzyQuery))
	} else {
		must = append(must, bleve.NewMatchAllQuery())
	}

	if params.Status != "" {
		statusQuery := bleve.NewTermQuery(params.Status)
		statusQuery.SetField("status")
		must = append(must, statusQuery)
	}

	if len(must) == 1 {
		return must[0]
	}
	return bleve.NewConjunctionQuery(must...)
}
