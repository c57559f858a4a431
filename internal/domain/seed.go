package domain

import (
	"time"

	"github.com/readerly/readerly-server/internal/color"
)

// Seed data reconstructs the demo state on every process start.
// All domain state is volatile, so the seed is the whole universe
// a fresh server knows about.

// SeedUser is the current (single) user of the tracker.
func SeedUser() User {
	return User{
		ID:     "u1",
		Name:   "Alex Reader",
		Handle: "@alexreads",
		Avatar: "https://picsum.photos/seed/alex/200/200",
		Color:  color.ForUser("u1"),
		Bio:    "Sci-fi enthusiast and coffee lover. Currently lost in space operas.",
	}
}

// SeedFriends are the other readers whose posts seed the feed.
func SeedFriends() []User {
	return []User{
		{
			ID:     "u2",
			Name:   "Sarah Jenkins",
			Handle: "@sarahj",
			Avatar: "https://picsum.photos/seed/sarah/200/200",
			Color:  color.ForUser("u2"),
			Bio:    "Historical fiction addict.",
		},
		{
			ID:     "u3",
			Name:   "David Chen",
			Handle: "@dchen_books",
			Avatar: "https://picsum.photos/seed/david/200/200",
			Color:  color.ForUser("u3"),
			Bio:    "Reading my way through the classics.",
		},
	}
}

// SeedEntries returns the initial shelf, newest first relative to now.
func SeedEntries(now time.Time) []ShelfEntry {
	rating := 5
	return []ShelfEntry{
		{
			Book: Book{
				ID:            "b3",
				Title:         "The Midnight Library",
				Authors:       []string{"Matt Haig"},
				Description:   "Between life and death there is a library, and within that library, the shelves go on forever.",
				Thumbnail:     "https://books.google.com/books/content?id=548UEAAAQBAJ&printsec=frontcover&img=1&zoom=1&edge=curl&source=gbs_api",
				PageCount:     304,
				Categories:    []string{"Fiction"},
				PublishedDate: "2020-08-13",
			},
			Status:  StatusWantToRead,
			AddedAt: now.Add(-200 * time.Second),
		},
		{
			Book: Book{
				ID:            "b1",
				Title:         "Project Hail Mary",
				Authors:       []string{"Andy Weir"},
				Description:   "Ryland Grace is the sole survivor on a desperate, last-chance mission, and if he fails, humanity and the earth itself will perish.",
				Thumbnail:     "https://books.google.com/books/content?id=zH4tEAAAQBAJ&printsec=frontcover&img=1&zoom=1&edge=curl&source=gbs_api",
				PageCount:     496,
				Categories:    []string{"Science Fiction"},
				PublishedDate: "2021-05-04",
			},
			Status:   StatusReading,
			Progress: 45,
			AddedAt:  now.Add(-1000 * time.Second),
		},
		{
			Book: Book{
				ID:            "b2",
				Title:         "Dune",
				Authors:       []string{"Frank Herbert"},
				Description:   "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides, heir to a noble family tasked with ruling an inhospitable world where the only thing of value is the \"spice\" melange.",
				Thumbnail:     "https://books.google.com/books/content?id=B1hSG45JCX4C&printsec=frontcover&img=1&zoom=1&edge=curl&source=gbs_api",
				PageCount:     412,
				Categories:    []string{"Science Fiction"},
				PublishedDate: "1965-08-01",
			},
			Status:   StatusCompleted,
			Progress: 100,
			Rating:   &rating,
			AddedAt:  now.Add(-50000 * time.Second),
		},
	}
}

// SeedPosts returns the initial feed, newest first relative to now.
func SeedPosts(now time.Time) []Post {
	friends := SeedFriends()
	return []Post{
		{
			ID:      "p1",
			UserID:  "u2",
			User:    friends[0],
			Content: `Just finished "The Nightingale". Absolutely heartbreaking and beautiful. 5 stars!`,
			Book: &Book{
				ID:        "b4",
				Title:     "The Nightingale",
				Authors:   []string{"Kristin Hannah"},
				Thumbnail: "https://books.google.com/books/content?id=KyxXAwAAQBAJ&printsec=frontcover&img=1&zoom=1&edge=curl&source=gbs_api",
			},
			Timestamp: now.Add(-1 * time.Hour),
			Likes:     12,
			Comments:  3,
			Type:      PostTypeReview,
		},
		{
			ID:      "p2",
			UserID:  "u3",
			User:    friends[1],
			Content: `Starting my journey with "Moby Dick". Wish me luck!`,
			Book: &Book{
				ID:        "b5",
				Title:     "Moby Dick",
				Authors:   []string{"Herman Melville"},
				Thumbnail: "https://books.google.com/books/content?id=JygQAAAAYAAJ&printsec=frontcover&img=1&zoom=1&edge=curl&source=gbs_api",
			},
			Timestamp: now.Add(-24 * time.Hour),
			Likes:     8,
			Comments:  5,
			Type:      PostTypeUpdate,
		},
	}
}
