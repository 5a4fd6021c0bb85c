package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"newsdesk/db"
	"newsdesk/internal/pipeline"
	"newsdesk/internal/repository"
	"newsdesk/pkg/feed"
	"newsdesk/pkg/image"
	"newsdesk/pkg/rewrite"
)

// One-shot unattended runner, meant to be invoked on a schedule. It talks to
// the pipeline directly: process-level trust, no HTTP authorization involved.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var seen pipeline.SeenStore
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, cross-run dedup disabled", "error", err)
	} else {
		defer db.CloseRedis()
		seen = db.SeenCache{}
	}

	repo := repository.NewArticleRepository(db.DB)

	categoryName := os.Getenv("PIPELINE_CATEGORY")
	if categoryName == "" {
		categoryName = "World"
	}

	count := 3
	if raw := os.Getenv("PIPELINE_COUNT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			count = parsed
		}
	}

	category, err := repo.GetCategoryByName(categoryName)
	if err != nil {
		log.Fatalf("error resolving category: %v", err)
	}
	if category == nil {
		log.Fatalf("unknown category: %s", categoryName)
	}

	resolver := image.NewResolver(imageEndpoint(), os.Getenv("AI_GATEWAY_API_KEY"))

	p := pipeline.New(feed.NewFetcher(), newRewriteClient(), resolver, repo, seen)

	result, err := p.Run(context.Background(), pipeline.Request{
		CategoryIDs:   []int64{category.ID},
		CategoryNames: []string{category.Name},
		Count:         count,
		Language:      os.Getenv("PIPELINE_LANGUAGE"),
		RSSOnly:       os.Getenv("PIPELINE_RSS_ONLY") == "true",
	})
	if err != nil {
		log.Fatalf("pipeline run failed: %v", err)
	}

	slog.Info("pipeline run complete", "created", len(result.Created), "mode", result.Mode)
}

func newRewriteClient() rewrite.Client {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return rewrite.NewAnthropicClient(key)
	}
	return rewrite.NewOpenAIClient(
		os.Getenv("AI_GATEWAY_API_KEY"),
		os.Getenv("AI_GATEWAY_URL"),
		os.Getenv("REWRITE_MODEL"),
	)
}

func imageEndpoint() string {
	if url := os.Getenv("AI_IMAGE_URL"); url != "" {
		return url
	}
	if base := os.Getenv("AI_GATEWAY_URL"); base != "" {
		return strings.TrimRight(base, "/") + "/chat/completions"
	}
	return "https://api.openai.com/v1/chat/completions"
}
