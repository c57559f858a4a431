package domain

import (
	"fmt"
	"time"
)

// PostType discriminates how a feed post came to exist.
type PostType string

const (
	// PostTypeAdd marks a system-generated announcement made when a book is shelved.
	PostTypeAdd PostType = "ADD"
	// PostTypeReview marks a user-authored post that tags a shelved book.
	PostTypeReview PostType = "REVIEW"
	// PostTypeUpdate marks a user-authored post with no tagged book.
	PostTypeUpdate PostType = "UPDATE"
)

// Valid checks if the post type is known.
func (t PostType) Valid() bool {
	switch t {
	case PostTypeAdd, PostTypeReview, PostTypeUpdate:
		return true
	default:
		return false
	}
}

// Post is a feed item. The embedded User and Book are denormalized
// value snapshots taken at creation time; they never alias the live
// records and do not reflect later edits.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	User      User      `json:"user"`
	Book      *Book     `json:"book,omitempty"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	// Likes only ever increases.
	Likes    int      `json:"likes"`
	Comments int      `json:"comments"`
	Type     PostType `json:"type"`
}

// NewAddPost builds the system-generated announcement for a shelved book.
func NewAddPost(id string, author *User, book *Book, status ShelfStatus, now time.Time) Post {
	snap := book.Snapshot()
	return Post{
		ID:        id,
		UserID:    author.ID,
		User:      author.Snapshot(),
		Book:      &snap,
		Content:   AddPostContent(book.Title, status),
		Timestamp: now,
		Type:      PostTypeAdd,
	}
}

// NewUserPost builds a user-authored post. When book is non-nil the post
// is a review of that book; otherwise it is a plain status update.
func NewUserPost(id string, author *User, content string, book *Book, now time.Time) Post {
	p := Post{
		ID:        id,
		UserID:    author.ID,
		User:      author.Snapshot(),
		Content:   content,
		Timestamp: now,
		Type:      PostTypeUpdate,
	}
	if book != nil {
		snap := book.Snapshot()
		p.Book = &snap
		p.Type = PostTypeReview
	}
	return p
}

// AddPostContent synthesizes the announcement text for an ADD post.
func AddPostContent(title string, status ShelfStatus) string {
	// Titles are interpolated raw so quotes inside them are not escaped.
	return fmt.Sprintf("Added \"%s\" to my %s shelf.", title, status.Label())
}
