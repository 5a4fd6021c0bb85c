package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var (
	ErrQuotaExhausted = errors.New("image: AI credits exhausted")
	ErrRateLimited    = errors.New("image: rate limit exceeded")
)

const (
	defaultTimeout = 30 * time.Second
	defaultModel   = "google/gemini-2.5-flash-image-preview"
)

// Resolver obtains header image URLs from an OpenAI-compatible image
// generation endpoint, degrading to curated placeholders.
type Resolver struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	timeout  time.Duration
}

func NewResolver(endpoint, apiKey string) *Resolver {
	return &Resolver{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    defaultModel,
		client:   &http.Client{},
		timeout:  defaultTimeout,
	}
}

// Resolve never fails: any generation error, timeout, or unusable payload
// falls through to a deterministic placeholder. The second return reports
// whether a placeholder was used.
func (r *Resolver) Resolve(ctx context.Context, prompt, title, category string) (string, bool) {
	url, err := r.Generate(ctx, prompt)
	if err != nil {
		slog.Warn("image generation failed, using placeholder", "category", category, "error", err)
		return Placeholder(category, title), true
	}
	return url, false
}

// Generate calls the image service with a bounded timeout and returns an
// externally hosted URL. Quota and rate-limit refusals surface as
// ErrQuotaExhausted and ErrRateLimited so direct callers can report them;
// data-URI payloads are never returned.
func (r *Resolver) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]any{
		"model": r.model,
		"messages": []map[string]string{
			{"role": "user", "content": imagePrompt(prompt)},
		},
		"modalities": []string{"image", "text"},
	})
	if err != nil {
		return "", fmt.Errorf("marshal image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusPaymentRequired:
		return "", ErrQuotaExhausted
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("image service error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
				Images  []struct {
					ImageURL struct {
						URL string `json:"url"`
					} `json:"image_url"`
				} `json:"images"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in image response")
	}

	message := parsed.Choices[0].Message
	if len(message.Images) > 0 {
		url := message.Images[0].ImageURL.URL
		if url != "" && !strings.HasPrefix(url, "data:") {
			return url, nil
		}
	}

	// Base64 payloads are too large to persist as URLs; discard them.
	if strings.Contains(message.Content, "data:image") {
		return "", fmt.Errorf("image service returned inline data URI")
	}

	return "", fmt.Errorf("no usable image URL in response")
}

func imagePrompt(prompt string) string {
	return fmt.Sprintf(`Generate a professional, high-quality news article header image for this topic: %s.

Requirements:
- Photojournalistic style
- High quality, suitable for a news website header
- Visually compelling and relevant to the topic
- No text overlays
- 16:9 aspect ratio composition`, prompt)
}
