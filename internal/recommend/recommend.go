package recommend

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/readerly/readerly-server/internal/domain"
)

// Rationale strings surfaced to the user alongside an empty result.
const (
	reasonKeyMissing  = "API Key missing"
	reasonFailed      = "Failed to generate recommendations."
	reasonNoResponse  = "No response generated."
	placeholderPages  = 300
	recommendAskCount = 3
)

// payload is the schema-constrained response shape.
type payload struct {
	Reason          string `json:"reason"`
	Recommendations []struct {
		Title       string `json:"title"`
		Author      string `json:"author"`
		Description string `json:"description"`
	} `json:"recommendations"`
}

// responseSchema constrains the model output to the payload shape.
func responseSchema() *openai.ChatCompletionResponseFormat {
	return &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:   "book_recommendations",
			Strict: true,
			Schema: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"reason": {Type: jsonschema.String},
					"recommendations": {
						Type: jsonschema.Array,
						Items: &jsonschema.Definition{
							Type: jsonschema.Object,
							Properties: map[string]jsonschema.Definition{
								"title":       {Type: jsonschema.String},
								"author":      {Type: jsonschema.String},
								"description": {Type: jsonschema.String},
							},
							Required:             []string{"title", "author", "description"},
							AdditionalProperties: false,
						},
					},
				},
				Required:             []string{"reason", "recommendations"},
				AdditionalProperties: false,
			},
		},
	}
}

// Recommend asks the service for books matching the user's preference
// text, personalized against the titles already in the collection.
//
// The adapter does not deduplicate results against the collection; the
// prompt asks the service to avoid held titles but that is best-effort.
// Callers wanting hard suppression must filter by title afterwards.
func (c *Client) Recommend(ctx context.Context, preferenceText string, collection []domain.Book) ([]domain.Book, string) {
	if !c.Available() {
		c.logger.Warn("Recommendation requested without API key")
		return []domain.Book{}, reasonKeyMissing
	}

	titles := make([]string, 0, len(collection))
	for i := range collection {
		titles = append(titles, collection[i].Title)
	}

	prompt := fmt.Sprintf(
		`Based on the user's request: %q and their current library containing: %s, recommend %d books they do not already have. Return a JSON object with a 'reason' string explaining the selection and a 'recommendations' array. Each recommendation should include title, author (as a string, if multiple join with comma), and a short description.`,
		preferenceText, strings.Join(titles, ", "), recommendAskCount,
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a well-read book recommendation assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: responseSchema(),
	})
	if err != nil {
		c.logger.Warn("Recommendation call failed", "error", err)
		return []domain.Book{}, reasonFailed
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Warn("Recommendation service returned no content")
		return []domain.Book{}, reasonNoResponse
	}

	var parsed payload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		c.logger.Warn("Recommendation response failed to parse", "error", err)
		return []domain.Book{}, reasonFailed
	}

	now := time.Now().UnixMilli()
	books := make([]domain.Book, 0, len(parsed.Recommendations))
	for i, rec := range parsed.Recommendations {
		books = append(books, domain.Book{
			// Synthesized ID, unique per call.
			ID:          fmt.Sprintf("rec-%d-%d", i, now),
			Title:       rec.Title,
			// The author string stays a single display author even when
			// it holds comma-joined names.
			Authors:     []string{rec.Author},
			Description: rec.Description,
			// The service supplies no imagery or page data.
			Thumbnail: placeholderThumbnail(rec.Title),
			PageCount: placeholderPages,
		})
	}

	return books, parsed.Reason
}

// Summarize generates a short spoiler-free hook for one book.
func (c *Client) Summarize(ctx context.Context, title, author string) string {
	if !c.Available() {
		return "API Key missing."
	}

	prompt := fmt.Sprintf("Write a concise, engaging 2-sentence summary (hook) for the book %q by %s. Do not give spoilers.", title, author)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.logger.Warn("Summary call failed", "title", title, "error", err)
		return "Could not generate summary."
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "Summary unavailable."
	}
	return resp.Choices[0].Message.Content
}

// placeholderThumbnail builds the stand-in cover image reference.
func placeholderThumbnail(title string) string {
	return "https://via.placeholder.com/128x192.png?text=" + url.QueryEscape(title)
}
