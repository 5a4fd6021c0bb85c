package rewrite

import (
	"context"
	"errors"
)

// Upstream signals the caller uses to trigger the sticky passthrough fallback.
// Any other error is a per-item failure.
var (
	ErrQuotaExhausted = errors.New("rewrite: AI credits exhausted")
	ErrRateLimited    = errors.New("rewrite: rate limit exceeded")
)

type Input struct {
	Title       string
	Description string
	Source      string
	Language    string
	OptimizeSEO bool
}

// Draft is a publishable article draft. The AI path and the deterministic
// fallback both produce this shape and are interchangeable to the pipeline.
type Draft struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	ImagePrompt string   `json:"imagePrompt"`
	SEOKeywords []string `json:"seoKeywords"`
}

type Client interface {
	Rewrite(ctx context.Context, input Input) (*Draft, error)
}
