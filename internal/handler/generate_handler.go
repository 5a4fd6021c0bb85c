package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"newsdesk/internal/auth"
	"newsdesk/internal/pipeline"
)

type Authorizer interface {
	Authorize(cronSecret, bearerToken string) (*auth.Principal, error)
}

type PipelineRunner interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

type HealthStore interface {
	CountArticles() (int, error)
}

type GenerateHandler struct {
	auth     Authorizer
	pipeline PipelineRunner
	store    HealthStore
}

func NewGenerateHandler(auth Authorizer, pipeline PipelineRunner, store HealthStore) *GenerateHandler {
	return &GenerateHandler{auth: auth, pipeline: pipeline, store: store}
}

// Generate runs the publication pipeline. Authorization is all-or-nothing:
// a caller that matches no tier gets 401/403 before any work happens.
func (h *GenerateHandler) Generate(c *gin.Context) {
	principal, err := h.auth.Authorize(c.GetHeader("x-cron-secret"), bearerToken(c))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case errors.Is(err, auth.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Editor or Admin role required"})
		default:
			slog.Error("error resolving caller authorization", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
		}
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.CategoryIDs) == 0 || len(req.CategoryNames) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoryIds and categoryNames are required"})
		return
	}

	var authorID *string
	if principal.Kind == auth.KindUser {
		id := principal.UserID
		authorID = &id
	}

	result, err := h.pipeline.Run(c.Request.Context(), pipeline.Request{
		CategoryIDs:   req.CategoryIDs,
		CategoryNames: req.CategoryNames,
		Count:         req.Count,
		Language:      req.Language,
		RSSOnly:       req.RSSOnly,
		AuthorID:      authorID,
	})
	if err != nil {
		slog.Error("pipeline run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	articles := make([]ArticleResponse, 0, len(result.Created))
	for _, a := range result.Created {
		articles = append(articles, ArticleResponse{
			ID:            a.ID,
			Title:         a.Title,
			Slug:          a.Slug,
			Excerpt:       a.Excerpt,
			FeaturedImage: a.FeaturedImage,
			CategoryID:    a.CategoryID,
			AuthorID:      a.AuthorID,
			Status:        a.Status,
			IsBreaking:    a.IsBreaking,
			IsFeatured:    a.IsFeatured,
			ReadTime:      a.ReadTime,
			Tags:          a.Tags,
			PublishedAt:   a.PublishedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Success:  len(result.Created) > 0,
		Message:  result.Message,
		Articles: articles,
		Mode:     string(result.Mode),
	})
}

func (h *GenerateHandler) GetHealth(c *gin.Context) {
	_, err := h.store.CountArticles()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
