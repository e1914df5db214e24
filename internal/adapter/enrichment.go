package adapter

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

const (
	chatCompletionsPath = "/v1/chat/completions"

	enrichSystemPrompt = "You expand short task descriptions for a personal todo list. " +
		"Reply with the expanded description only, in the language of the input, " +
		"in at most 1000 characters."
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIEnricher expands descriptions through an OpenAI-compatible chat
// completions endpoint.
type OpenAIEnricher struct {
	client *utils.HTTPClient
	model  string
}

// NewOpenAIEnricher builds an enricher for cfg.BaseURL. The API key, when
// set, is sent as a bearer token.
func NewOpenAIEnricher(cfg config.Enrichment) *OpenAIEnricher {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &OpenAIEnricher{client: client, model: cfg.Model}
}

// Enrich returns the expanded form of text, trimmed and cut to the maximum
// description length. Transport failures, non-2xx statuses and completions
// below the minimum description length yield [ErrEnrichment].
func (e *OpenAIEnricher) Enrich(ctx context.Context, text string) (string, error) {
	log := logger.FromContext(ctx)

	var result chatCompletionResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionRequest{
			Model: e.model,
			Messages: []chatMessage{
				{Role: "system", Content: enrichSystemPrompt},
				{Role: "user", Content: text},
			},
		}).
		SetResult(&result).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "*OpenAIEnricher.Enrich").Msg("enrichment request failed")
		return "", fmt.Errorf("%w: %w", ErrEnrichment, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*OpenAIEnricher.Enrich").Int("status", resp.StatusCode()).Msg("enrichment request rejected")
		return "", fmt.Errorf("%w: %w", ErrEnrichment, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrEnrichment)
	}

	enriched := truncateRunes(strings.TrimSpace(result.Choices[0].Message.Content), validators.MaxDescriptionLength)
	if enriched == "" {
		return "", fmt.Errorf("%w: empty completion", ErrEnrichment)
	}
	if utf8.RuneCountInString(enriched) < validators.MinDescriptionLength {
		return "", fmt.Errorf("%w: completion %q is shorter than %d characters", ErrEnrichment, enriched, validators.MinDescriptionLength)
	}

	return enriched, nil
}

// PassthroughEnricher returns descriptions unchanged. It stands in when
// enrichment is disabled.
type PassthroughEnricher struct{}

func NewPassthroughEnricher() PassthroughEnricher {
	return PassthroughEnricher{}
}

func (PassthroughEnricher) Enrich(_ context.Context, text string) (string, error) {
	return text, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
