package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/readerly/readerly-server/internal/domain"
	"github.com/readerly/readerly-server/internal/normalize"
	"github.com/readerly/readerly-server/internal/store"
)

// BookSearcher finds books in an external catalog.
// Failures are absorbed by the implementation; an empty list is the
// only failure signal.
type BookSearcher interface {
	Search(ctx context.Context, query string) []domain.Book
}

// Recommender produces AI book recommendations with a rationale.
type Recommender interface {
	Available() bool
	Recommend(ctx context.Context, preferenceText string, collection []domain.Book) ([]domain.Book, string)
	Summarize(ctx context.Context, title, author string) string
}

// DiscoverService fronts the two external adapters.
//
// Each surface allows one in-flight call at a time: a second request
// waits for the first to finish. Serializing keeps responses in request
// order, so a slow early response can never overwrite a later one.
type DiscoverService struct {
	searcher    BookSearcher
	recommender Recommender
	store       *store.Store
	logger      *slog.Logger

	searchMu    sync.Mutex
	recommendMu sync.Mutex
}

// NewDiscoverService creates a new discover service.
func NewDiscoverService(searcher BookSearcher, recommender Recommender, store *store.Store, logger *slog.Logger) *DiscoverService {
	return &DiscoverService{
		searcher:    searcher,
		recommender: recommender,
		store:       store,
		logger:      logger,
	}
}

// Search runs a catalog search. Results preserve source order and an
// empty list covers both "no matches" and upstream failure.
func (s *DiscoverService) Search(ctx context.Context, query string) []domain.Book {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	return s.searcher.Search(ctx, query)
}

// Recommend asks for personalized recommendations, passing the current
// collection for context, then filters out results whose title matches
// a book already on the shelf.
func (s *DiscoverService) Recommend(ctx context.Context, preferenceText string) ([]domain.Book, string) {
	s.recommendMu.Lock()
	defer s.recommendMu.Unlock()

	var collection []domain.Book
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("Failed to load collection for recommendations", "error", err)
	} else {
		collection = make([]domain.Book, 0, len(entries))
		for i := range entries {
			collection = append(collection, entries[i].Book)
		}
	}

	books, reason := s.recommender.Recommend(ctx, preferenceText, collection)

	// The adapter's avoidance of held titles is best-effort, so exact
	// duplicates are suppressed here by title equality.
	held := make(map[string]bool, len(collection))
	for i := range collection {
		held[normalize.TitleKey(collection[i].Title)] = true
	}

	filtered := books[:0]
	for _, book := range books {
		if held[normalize.TitleKey(book.Title)] {
			s.logger.Debug("Dropping recommendation already on shelf", "title", book.Title)
			continue
		}
		filtered = append(filtered, book)
	}

	return filtered, reason
}

// RecommendAvailable reports whether the recommendation feature is usable.
func (s *DiscoverService) RecommendAvailable() bool {
	return s.recommender.Available()
}

// Summarize generates a short hook for one book.
func (s *DiscoverService) Summarize(ctx context.Context, title, author string) string {
	s.recommendMu.Lock()
	defer s.recommendMu.Unlock()

	return s.recommender.Summarize(ctx, title, author)
}
