package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsdesk/pkg/image"
)

type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ImageHandler struct {
	generator ImageGenerator
}

func NewImageHandler(generator ImageGenerator) *ImageHandler {
	return &ImageHandler{generator: generator}
}

// Generate resolves a header image for a single article. Quota and rate-limit
// refusals surface as 402/429 so callers can react; any other failure
// degrades to a curated placeholder.
func (h *ImageHandler) Generate(c *gin.Context) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	url, err := h.generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, image.ErrQuotaExhausted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI credits exhausted. Please add more credits."})
		case errors.Is(err, image.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		default:
			slog.Warn("image generation failed, serving placeholder", "slug", req.Slug, "error", err)
			c.JSON(http.StatusOK, ImageResponse{
				ImageURL:    image.Placeholder("", req.Prompt),
				Placeholder: true,
			})
		}
		return
	}

	c.JSON(http.StatusOK, ImageResponse{ImageURL: url})
}
