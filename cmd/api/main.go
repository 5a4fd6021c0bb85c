package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"newsdesk/db"
	"newsdesk/internal/auth"
	"newsdesk/internal/handler"
	"newsdesk/internal/pipeline"
	"newsdesk/internal/repository"
	"newsdesk/pkg/feed"
	"newsdesk/pkg/image"
	"newsdesk/pkg/rewrite"
)

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

	authorizer := auth.NewAuthorizer(
		os.Getenv("CRON_SECRET"),
		os.Getenv("SERVICE_API_KEY"),
		os.Getenv("JWT_SECRET"),
		repo,
	)

	resolver := image.NewResolver(imageEndpoint(), os.Getenv("AI_GATEWAY_API_KEY"))

	p := pipeline.New(feed.NewFetcher(), newRewriteClient(), resolver, repo, seen)

	generateHandler := handler.NewGenerateHandler(authorizer, p, repo)
	imageHandler := handler.NewImageHandler(resolver)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "x-cron-secret"},
	}))

	r.POST("/generate", generateHandler.Generate)
	r.POST("/images/generate", imageHandler.Generate)
	r.GET("/health", generateHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
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
