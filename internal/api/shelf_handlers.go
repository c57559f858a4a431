package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/readerly/readerly-server/internal/domain"
	"github.com/readerly/readerly-server/internal/search"
)

func (s *Server) registerShelfRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listShelf",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelf",
		Summary:     "List shelf",
		Description: "Lists the current user's shelf, newest additions first",
		Tags:        []string{"Shelf"},
	}, s.handleListShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "addToShelf",
		Method:      http.MethodPost,
		Path:        "/api/v1/shelf",
		Summary:     "Add book to shelf",
		Description: "Adds a book to the shelf and publishes an ADD post to the feed",
		Tags:        []string{"Shelf"},
	}, s.handleAddToShelf)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateShelfStatus",
		Method:      http.MethodPatch,
		Path:        "/api/v1/shelf/{bookId}/status",
		Summary:     "Update shelf status",
		Description: "Moves a shelved book to a different status without reordering the shelf",
		Tags:        []string{"Shelf"},
	}, s.handleUpdateShelfStatus)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchShelf",
		Method:      http.MethodGet,
		Path:        "/api/v1/shelf/search",
		Summary:     "Search shelf",
		Description: "Full-text search over the shelf with an optional status filter",
		Tags:        []string{"Shelf"},
	}, s.handleSearchShelf)
}

// === DTOs ===

// BookRequest carries the book metadata to put on the shelf.
type BookRequest struct {
	ID            string   `json:"id" validate:"required" doc:"Source-stable book ID"`
	Title         string   `json:"title" validate:"required" doc:"Book title"`
	Authors       []string `json:"authors,omitempty" doc:"Author list"`
	Description   string   `json:"description,omitempty" doc:"Book description"`
	Thumbnail     string   `json:"thumbnail,omitempty" doc:"Cover image URL"`
	PageCount     int      `json:"page_count,omitempty" validate:"omitempty,gte=0" doc:"Number of pages"`
	Categories    []string `json:"categories,omitempty" doc:"Subject categories"`
	PublishedDate string   `json:"published_date,omitempty" doc:"Publication date"`
	ISBN          string   `json:"isbn,omitempty" doc:"ISBN identifier"`
}

// AddToShelfRequest is the request body for shelving a book.
type AddToShelfRequest struct {
	Book   BookRequest `json:"book" validate:"required" doc:"Book to shelve"`
	Status string      `json:"status" validate:"required,shelfstatus" doc:"Target shelf status"`
	Notes  string      `json:"notes,omitempty" doc:"Personal notes about the book"`
}

// AddToShelfInput is the Huma input for shelving a book.
type AddToShelfInput struct {
	Body AddToShelfRequest
}

// AddToShelfResponse is the API response for a successful add.
type AddToShelfResponse struct {
	Entry      ShelfEntryResponse `json:"entry" doc:"Created shelf entry"`
	Post       PostResponse       `json:"post" doc:"ADD post published to the feed"`
	NavigateTo string             `json:"navigate_to" doc:"Client navigation hint"`
}

// AddToShelfOutput is the Huma output wrapper for shelving a book.
type AddToShelfOutput struct {
	Body AddToShelfResponse
}

// ListShelfResponse is the API response for listing the shelf.
type ListShelfResponse struct {
	Entries []ShelfEntryResponse `json:"entries" doc:"Shelf entries, newest first"`
	Total   int                  `json:"total" doc:"Total count"`
}

// ListShelfOutput is the Huma output wrapper for listing the shelf.
type ListShelfOutput struct {
	Body ListShelfResponse
}

// UpdateShelfStatusRequest is the request body for a status change.
type UpdateShelfStatusRequest struct {
	Status string `json:"status" validate:"required,shelfstatus" doc:"New shelf status"`
}

// UpdateShelfStatusInput is the Huma input for a status change.
type UpdateShelfStatusInput struct {
	BookID string `path:"bookId" doc:"Book ID"`
	Body   UpdateShelfStatusRequest
}

// ShelfEntryOutput is the Huma output wrapper for a single shelf entry.
type ShelfEntryOutput struct {
	Body ShelfEntryResponse
}

// SearchShelfInput is the Huma input for searching the shelf.
type SearchShelfInput struct {
	Query  string `query:"q" doc:"Search text"`
	Status string `query:"status" doc:"Optional status filter"`
	Limit  int    `query:"limit" minimum:"1" maximum:"100" doc:"Maximum results to return"`
	Offset int    `query:"offset" minimum:"0" doc:"Results to skip"`
}

// SearchShelfResponse is the API response for a shelf search.
type SearchShelfResponse struct {
	Entries []ShelfEntryResponse `json:"entries" doc:"Matching shelf entries"`
	Total   int                  `json:"total" doc:"Number of matches returned"`
}

// SearchShelfOutput is the Huma output wrapper for a shelf search.
type SearchShelfOutput struct {
	Body SearchShelfResponse
}

// === Handlers ===

func (s *Server) handleListShelf(ctx context.Context, _ *struct{}) (*ListShelfOutput, error) {
	entries, err := s.services.Shelf.ListShelf(ctx)
	if err != nil {
		return nil, err
	}

	resp := toShelfEntryResponses(entries)
	return &ListShelfOutput{
		Body: ListShelfResponse{Entries: resp, Total: len(resp)},
	}, nil
}

func (s *Server) handleAddToShelf(ctx context.Context, input *AddToShelfInput) (*AddToShelfOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	book := domain.Book{
		ID:            input.Body.Book.ID,
		Title:         input.Body.Book.Title,
		Authors:       input.Body.Book.Authors,
		Description:   input.Body.Book.Description,
		Thumbnail:     input.Body.Book.Thumbnail,
		PageCount:     input.Body.Book.PageCount,
		Categories:    input.Body.Book.Categories,
		PublishedDate: input.Body.Book.PublishedDate,
		ISBN:          input.Body.Book.ISBN,
	}

	entry, post, err := s.services.Shelf.AddToShelf(ctx, book, domain.ShelfStatus(input.Body.Status), input.Body.Notes)
	if err != nil {
		return nil, err
	}

	return &AddToShelfOutput{
		Body: AddToShelfResponse{
			Entry:      toShelfEntryResponse(entry),
			Post:       toPostResponse(post),
			NavigateTo: "shelf",
		},
	}, nil
}

func (s *Server) handleUpdateShelfStatus(ctx context.Context, input *UpdateShelfStatusInput) (*ShelfEntryOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	entry, err := s.services.Shelf.UpdateStatus(ctx, input.BookID, domain.ShelfStatus(input.Body.Status))
	if err != nil {
		return nil, err
	}

	return &ShelfEntryOutput{Body: toShelfEntryResponse(entry)}, nil
}

func (s *Server) handleSearchShelf(ctx context.Context, input *SearchShelfInput) (*SearchShelfOutput, error) {
	params := search.DefaultParams()
	params.Query = input.Query
	params.Status = input.Status
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	if input.Offset > 0 {
		params.Offset = input.Offset
	}

	entries, err := s.services.Shelf.SearchShelf(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := toShelfEntryResponses(entries)
	return &SearchShelfOutput{
		Body: SearchShelfResponse{Entries: resp, Total: len(resp)},
	}, nil
}
