package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/readerly/readerly-server/internal/errors"
)

func (s *Server) registerFeedRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFeed",
		Method:      http.MethodGet,
		Path:        "/api/v1/feed",
		Summary:     "List feed",
		Description: "Lists feed posts, newest first, with cursor pagination",
		Tags:        []string{"Feed"},
	}, s.handleListFeed)

	huma.Register(s.api, huma.Operation{
		OperationID: "createPost",
		Method:      http.MethodPost,
		Path:        "/api/v1/feed",
		Summary:     "Create post",
		Description: "Publishes a post, optionally tagged with a shelved book",
		Tags:        []string{"Feed"},
	}, s.handleCreatePost)

	huma.Register(s.api, huma.Operation{
		OperationID: "likePost",
		Method:      http.MethodPost,
		Path:        "/api/v1/feed/{id}/like",
		Summary:     "Like post",
		Description: "Increments a post's like counter",
		Tags:        []string{"Feed"},
	}, s.handleLikePost)
}

// === DTOs ===

// ListFeedInput is the Huma input for listing the feed.
type ListFeedInput struct {
	Limit  int    `query:"limit" minimum:"1" maximum:"100" doc:"Maximum posts to return"`
	Before string `query:"before" doc:"RFC 3339 cursor, returns posts strictly older than this"`
}

// ListFeedResponse is the API response for listing the feed.
type ListFeedResponse struct {
	Posts []PostResponse `json:"posts" doc:"Feed posts, newest first"`
	Total int            `json:"total" doc:"Number of posts returned"`
}

// ListFeedOutput is the Huma output wrapper for listing the feed.
type ListFeedOutput struct {
	Body ListFeedResponse
}

// CreatePostRequest is the request body for publishing a post.
type CreatePostRequest struct {
	Content      string `json:"content" validate:"required" doc:"Post text"`
	TaggedBookID string `json:"tagged_book_id,omitempty" doc:"Optional shelved book to tag"`
}

// CreatePostInput is the Huma input for publishing a post.
type CreatePostInput struct {
	Body CreatePostRequest
}

// PostOutput is the Huma output wrapper for a single post.
type PostOutput struct {
	Body PostResponse
}

// LikePostInput is the Huma input for liking a post.
type LikePostInput struct {
	ID string `path:"id" doc:"Post ID"`
}

// === Handlers ===

func (s *Server) handleListFeed(ctx context.Context, input *ListFeedInput) (*ListFeedOutput, error) {
	var before *time.Time
	if input.Before != "" {
		t, err := time.Parse(time.RFC3339, input.Before)
		if err != nil {
			return nil, domainerrors.Validation("before must be an RFC 3339 timestamp")
		}
		before = &t
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	posts, err := s.services.Feed.ListFeed(ctx, limit, before)
	if err != nil {
		return nil, err
	}

	resp := toPostResponses(posts)
	return &ListFeedOutput{
		Body: ListFeedResponse{Posts: resp, Total: len(resp)},
	}, nil
}

func (s *Server) handleCreatePost(ctx context.Context, input *CreatePostInput) (*PostOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	post, err := s.services.Feed.CreatePost(ctx, input.Body.Content, input.Body.TaggedBookID)
	if err != nil {
		return nil, err
	}

	return &PostOutput{Body: toPostResponse(post)}, nil
}

func (s *Server) handleLikePost(ctx context.Context, input *LikePostInput) (*PostOutput, error) {
	post, err := s.services.Feed.LikePost(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &PostOutput{Body: toPostResponse(post)}, nil
}
