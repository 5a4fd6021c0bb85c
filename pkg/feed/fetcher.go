package feed

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	userAgent = "Mozilla/5.0 (compatible; NewsdeskBot/1.0)"

	maxDescriptionLen = 500
	preferredFeedCap  = 5
	defaultFeedCap    = 3
)

// Item is a ranked raw news item extracted from a syndication feed. It is
// ephemeral: produced here, consumed once by the publication pipeline.
type Item struct {
	Title       string
	Description string
	Link        string
	PublishedAt time.Time
	Source      string
	Category    string
	Preferred   bool
}

type Fetcher struct {
	client   *http.Client
	parser   *gofeed.Parser
	topics   map[string][]Source
	regional []Source
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		parser:   gofeed.NewParser(),
		topics:   topicSources,
		regional: regionalSources,
	}
}

// Fetch returns up to limit ranked items for the topic, best effort. A feed
// that fails to load or parse contributes nothing; total failure yields an
// empty list, not an error.
func (f *Fetcher) Fetch(ctx context.Context, topic string, regional bool, limit int) ([]Item, error) {
	sources := f.sourcesFor(topic, regional)
	category := resolveTopic(topic, f.topics)

	var all []Item
	for _, src := range sources {
		items := f.fetchOne(ctx, src, category)
		all = append(all, items...)
	}

	rank(all)

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *Fetcher) sourcesFor(topic string, regional bool) []Source {
	key := resolveTopic(topic, f.topics)

	sources := append([]Source{}, f.topics[key]...)
	if regional {
		sources = append(sources, f.regional...)
	}
	return sources
}

func resolveTopic(topic string, topics map[string][]Source) string {
	key := strings.ToLower(strings.TrimSpace(topic))
	if mapped, ok := topicAliases[key]; ok {
		key = mapped
	}
	if _, ok := topics[key]; !ok {
		key = "world"
	}
	return key
}

func (f *Fetcher) fetchOne(ctx context.Context, src Source, category string) []Item {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		slog.Error("error building feed request", "url", src.URL, "error", err)
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Error("error fetching feed", "source", src.Name, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("feed returned non-OK status", "source", src.Name, "status", resp.StatusCode)
		return nil
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		slog.Error("error parsing feed", "source", src.Name, "error", err)
		return nil
	}

	perFeedCap := defaultFeedCap
	if src.Preferred {
		perFeedCap = preferredFeedCap
	}

	var items []Item
	for _, entry := range parsed.Items {
		if len(items) >= perFeedCap {
			break
		}

		title := CleanText(entry.Title)
		description := CleanText(entry.Description)
		if description == "" {
			description = CleanText(entry.Content)
		}
		if title == "" || description == "" {
			continue
		}
		if len(description) > maxDescriptionLen {
			description = description[:maxDescriptionLen]
		}

		var published time.Time
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}

		items = append(items, Item{
			Title:       title,
			Description: description,
			Link:        strings.TrimSpace(entry.Link),
			PublishedAt: published,
			Source:      src.Name,
			Category:    category,
			Preferred:   src.Preferred,
		})
	}

	return items
}

// rank orders preferred-source items first; within the same tier, newest first.
func rank(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Preferred != items[j].Preferred {
			return items[i].Preferred
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}
