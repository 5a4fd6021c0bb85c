package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"newsdesk/internal/model"
	"newsdesk/pkg/feed"
	"newsdesk/pkg/image"
	"newsdesk/pkg/rewrite"
)

// Mode is the per-run operating mode. A run starts in ModeAI and latches to
// ModePassthrough on the first quota or rate-limit signal from the rewrite
// service; it never reverts within that run.
type Mode string

const (
	ModeAI          Mode = "ai"
	ModePassthrough Mode = "rss-only"
)

// breakingWindow is how long an article keeps its breaking flag. Demotion
// happens at the start of the next run, not on an independent clock: if no
// further run ever happens, stale breaking articles stay breaking.
const breakingWindow = 15 * time.Minute

const wordsPerMinute = 200

type NewsSource interface {
	Fetch(ctx context.Context, topic string, regional bool, limit int) ([]feed.Item, error)
}

type ImageResolver interface {
	Resolve(ctx context.Context, prompt, title, category string) (string, bool)
}

type ArticleStore interface {
	InsertArticle(article *model.Article) error
	DemoteStaleBreaking(cutoff time.Time) (int64, error)
}

// SeenStore remembers item links across runs so the same feed item is not
// published twice. A nil store disables deduplication.
type SeenStore interface {
	Seen(link string) (bool, error)
	MarkSeen(link string) error
}

type Request struct {
	CategoryIDs   []int64
	CategoryNames []string
	Count         int
	Language      string
	RSSOnly       bool
	AuthorID      *string
}

type Result struct {
	Created []model.Article
	Mode    Mode
	Message string
}

// Pipeline drives one publication run: age out stale breaking articles,
// fetch raw items, rewrite, resolve an image, persist. Items are processed
// sequentially with inter-item pacing to respect upstream rate limits.
//
// Overlapping runs are not mutually excluded; the persisted store is the
// only shared state and concurrent callers race benignly on it.
type Pipeline struct {
	source   NewsSource
	rewriter rewrite.Client
	images   ImageResolver
	store    ArticleStore
	seen     SeenStore
	limiter  *rate.Limiter
	now      func() time.Time
}

func New(source NewsSource, rewriter rewrite.Client, images ImageResolver, store ArticleStore, seen SeenStore) *Pipeline {
	return &Pipeline{
		source:   source,
		rewriter: rewriter,
		images:   images,
		store:    store,
		seen:     seen,
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 1),
		now:      time.Now,
	}
}

func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.CategoryIDs) == 0 || len(req.CategoryNames) == 0 {
		return nil, fmt.Errorf("at least one category id and name required")
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	language := req.Language
	if language == "" {
		language = "en"
	}

	if demoted, err := p.store.DemoteStaleBreaking(p.now().Add(-breakingWindow)); err != nil {
		slog.Error("error demoting stale breaking articles", "error", err)
	} else if demoted > 0 {
		slog.Info("demoted stale breaking articles", "count", demoted)
	}

	// mode is deliberately local to this frame, not package state.
	mode := ModeAI
	if req.RSSOnly {
		mode = ModePassthrough
	}

	topic := req.CategoryNames[0]
	items, err := p.source.Fetch(ctx, topic, true, count)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	if len(items) == 0 {
		return &Result{Mode: mode, Message: "No news found for this category"}, nil
	}

	var created []model.Article

	for _, item := range items {
		if err := p.limiter.Wait(ctx); err != nil {
			break
		}

		if p.seenBefore(item.Link) {
			slog.Info("skipping already published item", "link", item.Link)
			continue
		}

		var draft *rewrite.Draft
		draft, mode = p.buildDraft(ctx, item, req.CategoryNames, language, mode)
		if draft == nil {
			continue
		}

		slug := makeSlug(draft.Title, p.now())

		var imageURL string
		if mode == ModePassthrough {
			imageURL = image.Placeholder(item.Category, draft.Title)
		} else {
			prompt := draft.ImagePrompt
			if prompt == "" {
				prompt = draft.Title
			}
			imageURL, _ = p.images.Resolve(ctx, prompt, draft.Title, item.Category)
		}

		article := model.Article{
			Title:         draft.Title,
			Slug:          slug,
			Content:       draft.Content,
			Excerpt:       draft.Excerpt,
			FeaturedImage: imageURL,
			CategoryID:    req.CategoryIDs[0],
			AuthorID:      req.AuthorID,
			Status:        model.StatusPublished,
			IsBreaking:    true,
			ReadTime:      readTime(draft.Content),
			Tags:          unionTags(req.CategoryNames, draft.SEOKeywords),
			PublishedAt:   p.now(),
		}

		if err := p.store.InsertArticle(&article); err != nil {
			slog.Error("error saving article, skipping", "slug", slug, "error", err)
			continue
		}

		p.markSeen(item.Link)
		created = append(created, article)
		slog.Info("article published", "id", article.ID, "slug", slug, "mode", mode)
	}

	return &Result{
		Created: created,
		Mode:    mode,
		Message: fmt.Sprintf("Generated %d article(s)", len(created)),
	}, nil
}

// buildDraft produces a draft for one item and the (possibly latched) mode.
// A nil draft means the item is skipped; the run continues.
func (p *Pipeline) buildDraft(ctx context.Context, item feed.Item, categoryNames []string, language string, mode Mode) (*rewrite.Draft, Mode) {
	if mode == ModePassthrough {
		return rewrite.FallbackDraft(item, categoryNames), mode
	}

	draft, err := p.rewriter.Rewrite(ctx, rewrite.Input{
		Title:       item.Title,
		Description: item.Description,
		Source:      item.Source,
		Language:    language,
		OptimizeSEO: true,
	})
	if err == nil {
		return draft, mode
	}

	if errors.Is(err, rewrite.ErrQuotaExhausted) || errors.Is(err, rewrite.ErrRateLimited) {
		slog.Warn("AI rewrite unavailable, switching to passthrough for rest of run", "error", err)
		return rewrite.FallbackDraft(item, categoryNames), ModePassthrough
	}

	slog.Error("error rewriting item, skipping", "title", item.Title, "error", err)
	return nil, mode
}

func (p *Pipeline) seenBefore(link string) bool {
	if p.seen == nil || link == "" {
		return false
	}
	seen, err := p.seen.Seen(link)
	if err != nil {
		slog.Error("error checking seen cache", "error", err)
		return false
	}
	return seen
}

func (p *Pipeline) markSeen(link string) {
	if p.seen == nil || link == "" {
		return
	}
	if err := p.seen.MarkSeen(link); err != nil {
		slog.Error("error updating seen cache", "error", err)
	}
}

func readTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func unionTags(categoryNames, keywords []string) []string {
	var tags []string
	seen := make(map[string]bool)

	for _, t := range append(append([]string{}, categoryNames...), keywords...) {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		tags = append(tags, t)
	}

	return tags
}
