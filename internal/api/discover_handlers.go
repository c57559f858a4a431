package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerDiscoverRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/discover/search",
		Summary:     "Search catalog",
		Description: "Searches the external book catalog",
		Tags:        []string{"Discover"},
	}, s.handleSearchCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecommendations",
		Method:      http.MethodPost,
		Path:        "/api/v1/discover/recommendations",
		Summary:     "Get recommendations",
		Description: "Generates book recommendations from a free-form preference prompt",
		Tags:        []string{"Discover"},
	}, s.handleGetRecommendations)

	huma.Register(s.api, huma.Operation{
		OperationID: "summarizeBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/discover/summary",
		Summary:     "Summarize book",
		Description: "Generates a short spoiler-free summary for a book",
		Tags:        []string{"Discover"},
	}, s.handleSummarizeBook)
}

// === DTOs ===

// SearchCatalogInput is the Huma input for a catalog search.
type SearchCatalogInput struct {
	Query string `query:"q" doc:"Search text"`
}

// SearchCatalogResponse is the API response for a catalog search.
type SearchCatalogResponse struct {
	Books []BookResponse `json:"books" doc:"Matching books, empty when the catalog is unavailable"`
	Total int            `json:"total" doc:"Number of books returned"`
}

// SearchCatalogOutput is the Huma output wrapper for a catalog search.
type SearchCatalogOutput struct {
	Body SearchCatalogResponse
}

// RecommendationsRequest is the request body for generating recommendations.
type RecommendationsRequest struct {
	Prompt string `json:"prompt" validate:"required" doc:"Free-form reading preference text"`
}

// RecommendationsInput is the Huma input for generating recommendations.
type RecommendationsInput struct {
	Body RecommendationsRequest
}

// RecommendationsResponse is the API response for generated recommendations.
type RecommendationsResponse struct {
	Recommendations []BookResponse `json:"recommendations" doc:"Recommended books not already on the shelf"`
	Reason          string         `json:"reason" doc:"Model's reasoning, or a failure explanation"`
	Available       bool           `json:"available" doc:"Whether the recommendation backend is configured"`
}

// RecommendationsOutput is the Huma output wrapper for recommendations.
type RecommendationsOutput struct {
	Body RecommendationsResponse
}

// SummaryRequest is the request body for a book summary.
type SummaryRequest struct {
	Title  string `json:"title" validate:"required" doc:"Book title"`
	Author string `json:"author,omitempty" doc:"Book author"`
}

// SummaryInput is the Huma input for a book summary.
type SummaryInput struct {
	Body SummaryRequest
}

// SummaryResponse is the API response for a book summary.
type SummaryResponse struct {
	Summary string `json:"summary" doc:"Generated summary, or a failure explanation"`
}

// SummaryOutput is the Huma output wrapper for a book summary.
type SummaryOutput struct {
	Body SummaryResponse
}

// === Handlers ===

func (s *Server) handleSearchCatalog(ctx context.Context, input *SearchCatalogInput) (*SearchCatalogOutput, error) {
	books := s.services.Discover.Search(ctx, input.Query)

	resp := toBookResponses(books)
	return &SearchCatalogOutput{
		Body: SearchCatalogResponse{Books: resp, Total: len(resp)},
	}, nil
}

func (s *Server) handleGetRecommendations(ctx context.Context, input *RecommendationsInput) (*RecommendationsOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	books, reason := s.services.Discover.Recommend(ctx, input.Body.Prompt)

	return &RecommendationsOutput{
		Body: RecommendationsResponse{
			Recommendations: toBookResponses(books),
			Reason:          reason,
			Available:       s.services.Discover.RecommendAvailable(),
		},
	}, nil
}

func (s *Server) handleSummarizeBook(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	summary := s.services.Discover.Summarize(ctx, input.Body.Title, input.Body.Author)

	return &SummaryOutput{Body: SummaryResponse{Summary: summary}}, nil
}
