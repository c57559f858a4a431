package api

import (
	"time"

	"github.com/readerly/readerly-server/internal/domain"
)

// === Shared response DTOs ===

// BookResponse represents catalog book metadata in API responses.
type BookResponse struct {
	ID            string   `json:"id" doc:"Source-stable book ID"`
	Title         string   `json:"title" doc:"Book title"`
	Authors       []string `json:"authors" doc:"Display author list"`
	Description   string   `json:"description,omitempty" doc:"Book description"`
	Thumbnail     string   `json:"thumbnail,omitempty" doc:"Cover image URL"`
	PageCount     int      `json:"page_count,omitempty" doc:"Number of pages"`
	Categories    []string `json:"categories,omitempty" doc:"Subject categories"`
	PublishedDate string   `json:"published_date,omitempty" doc:"Publication date"`
	ISBN          string   `json:"isbn,omitempty" doc:"ISBN identifier"`
}

// ShelfEntryResponse represents a shelved book with its reading state.
type ShelfEntryResponse struct {
	BookResponse
	Status   string    `json:"status" doc:"Shelf status"`
	Progress int       `json:"progress" doc:"Reading progress 0-100"`
	Rating   *int      `json:"rating,omitempty" doc:"Rating 1-5"`
	Notes    string    `json:"notes,omitempty" doc:"Personal notes"`
	AddedAt  time.Time `json:"added_at" doc:"When the book was shelved"`
}

// UserResponse represents a reader profile in API responses.
type UserResponse struct {
	ID     string `json:"id" doc:"User ID"`
	Name   string `json:"name" doc:"Display name"`
	Handle string `json:"handle" doc:"Unique handle"`
	Avatar string `json:"avatar,omitempty" doc:"Avatar URL"`
	Color  string `json:"color,omitempty" doc:"Accent color shown behind the avatar"`
	Bio    string `json:"bio,omitempty" doc:"Profile bio"`
}

// PostResponse represents a feed post in API responses.
type PostResponse struct {
	ID        string        `json:"id" doc:"Post ID"`
	UserID    string        `json:"user_id" doc:"Author's user ID"`
	User      UserResponse  `json:"user" doc:"Author snapshot taken at posting time"`
	Book      *BookResponse `json:"book,omitempty" doc:"Tagged book snapshot"`
	Content   string        `json:"content" doc:"Post text"`
	Timestamp time.Time     `json:"timestamp" doc:"Creation time"`
	Likes     int           `json:"likes" doc:"Like count"`
	Comments  int           `json:"comments" doc:"Comment count"`
	Type      string        `json:"type" doc:"Post type: ADD, REVIEW, or UPDATE"`
}

// === Mapping helpers ===

func toBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Authors:       b.DisplayAuthors(),
		Description:   b.Description,
		Thumbnail:     b.Thumbnail,
		PageCount:     b.PageCount,
		Categories:    b.Categories,
		PublishedDate: b.PublishedDate,
		ISBN:          b.ISBN,
	}
}

func toBookResponses(books []domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, toBookResponse(&books[i]))
	}
	return out
}

func toShelfEntryResponse(e *domain.ShelfEntry) ShelfEntryResponse {
	return ShelfEntryResponse{
		BookResponse: toBookResponse(&e.Book),
		Status:       string(e.Status),
		Progress:     e.Progress,
		Rating:       e.Rating,
		Notes:        e.Notes,
		AddedAt:      e.AddedAt,
	}
}

func toShelfEntryResponses(entries []domain.ShelfEntry) []ShelfEntryResponse {
	out := make([]ShelfEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toShelfEntryResponse(&entries[i]))
	}
	return out
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Handle: u.Handle,
		Avatar: u.Avatar,
		Color:  u.Color,
		Bio:    u.Bio,
	}
}

func toPostResponse(p *domain.Post) PostResponse {
	resp := PostResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		User:      toUserResponse(&p.User),
		Content:   p.Content,
		Timestamp: p.Timestamp,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Type:      string(p.Type),
	}
	if p.Book != nil {
		book := toBookResponse(p.Book)
		resp.Book = &book
	}
	return resp
}

func toPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out
}
