package rewrite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient rewrites articles through the OpenAI API or any
// OpenAI-compatible gateway selected via baseURL.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  model,
	}
}

func (c *OpenAIClient) Rewrite(ctx context.Context, input Input) (*Draft, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(input)),
			openai.UserMessage(userPrompt(input)),
		},
	})

	if err != nil {
		return nil, mapAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	return parseDraft(resp.Choices[0].Message.Content)
}

func mapAPIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusPaymentRequired:
			return ErrQuotaExhausted
		case http.StatusTooManyRequests:
			return ErrRateLimited
		}
	}
	return fmt.Errorf("rewrite API error: %w", err)
}

func parseDraft(content string) (*Draft, error) {
	object, err := extractJSONObject(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	var draft Draft
	if err := json.Unmarshal([]byte(object), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	if draft.Title == "" || draft.Content == "" {
		return nil, fmt.Errorf("incomplete draft in response: %s", content)
	}

	return &draft, nil
}
