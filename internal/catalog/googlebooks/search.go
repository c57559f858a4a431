package googlebooks

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/readerly/readerly-server/internal/domain"
	"github.com/readerly/readerly-server/internal/normalize"
)

// Search looks up books matching the free-text query.
//
// A blank query returns an empty list without touching the network.
// Any failure also returns an empty list; callers cannot distinguish
// failure from no matches, which is the adapter's contract. Source
// ordering is preserved; there is no client-side re-ranking.
func (c *Client) Search(ctx context.Context, query string) []domain.Book {
	if strings.TrimSpace(query) == "" {
		return []domain.Book{}
	}

	books, err := c.fetch(ctx, query)
	if err != nil {
		c.logger.Warn("Book search failed", "query", query, "error", err)
		return []domain.Book{}
	}
	return books
}

// fetch performs the actual round trip.
func (c *Client) fetch(ctx context.Context, query string) ([]domain.Book, error) {
	if err := c.limiter.Wait(ctx, c.baseURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", c.maxResults))
	searchURL := c.baseURL + "/volumes?" + params.Encode()

	c.logger.Debug("Searching book catalog", "query", query, "url", searchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var volumesResp volumesResponse
	if err := json.UnmarshalRead(resp.Body, &volumesResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	books := make([]domain.Book, 0, len(volumesResp.Items))
	for i := range volumesResp.Items {
		books = append(books, normalizeVolume(&volumesResp.Items[i]))
	}

	c.logger.Debug("Book catalog results", "query", query, "count", len(books))

	return books, nil
}

// normalizeVolume maps a catalog record into a domain Book.
//
// Normalization contract: text fields are sanitized of control bytes;
// missing authors fall back to a single "Unknown Author"; thumbnail
// URLs are upgraded to https or left absent; the ISBN comes from the
// first industry identifier, if any.
func normalizeVolume(v *volume) domain.Book {
	info := &v.VolumeInfo

	authors := make([]string, 0, len(info.Authors))
	for _, a := range info.Authors {
		authors = append(authors, normalize.SanitizeString(a))
	}
	if len(authors) == 0 {
		authors = []string{domain.UnknownAuthor}
	}

	var thumbnail string
	if info.ImageLinks != nil && info.ImageLinks.Thumbnail != "" {
		thumbnail = strings.Replace(info.ImageLinks.Thumbnail, "http:", "https:", 1)
	}

	var isbn string
	if len(info.IndustryIdentifiers) > 0 {
		isbn = info.IndustryIdentifiers[0].Identifier
	}

	return domain.Book{
		ID:            v.ID,
		Title:         normalize.SanitizeString(info.Title),
		Authors:       authors,
		Description:   normalize.SanitizeString(info.Description),
		Thumbnail:     thumbnail,
		PageCount:     info.PageCount,
		Categories:    info.Categories,
		PublishedDate: info.PublishedDate,
		ISBN:          isbn,
	}
}
