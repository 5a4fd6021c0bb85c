package rewrite

import (
	"fmt"
	"strings"

	"newsdesk/pkg/feed"
)

const (
	excerptMaxLen    = 160
	maxTitleKeywords = 5
)

var stopWords = map[string]struct{}{
	"about": {}, "after": {}, "against": {}, "amid": {}, "among": {},
	"because": {}, "before": {}, "being": {}, "between": {}, "could": {},
	"every": {}, "might": {}, "other": {}, "their": {}, "there": {},
	"these": {}, "those": {}, "through": {}, "under": {}, "where": {},
	"which": {}, "while": {}, "would": {},
}

// FallbackDraft builds a publishable draft straight from the source feed item,
// with no network calls. It is pure: the same item and category names always
// produce the same draft.
func FallbackDraft(item feed.Item, categoryNames []string) *Draft {
	title := feed.CleanText(item.Title)
	description := feed.CleanText(item.Description)

	var body strings.Builder
	body.WriteString("<p>")
	body.WriteString(description)
	body.WriteString("</p>")
	body.WriteString("<hr/>")
	if item.Link != "" {
		fmt.Fprintf(&body, `<p>Source: <a href=%q target="_blank" rel="noopener">%s</a></p>`, item.Link, item.Source)
	} else {
		body.WriteString("<p>Source: ")
		body.WriteString(item.Source)
		body.WriteString("</p>")
	}

	return &Draft{
		Title:       title,
		Content:     body.String(),
		Excerpt:     truncateAtWord(description, excerptMaxLen),
		ImagePrompt: title,
		SEOKeywords: fallbackKeywords(title, categoryNames),
	}
}

// truncateAtWord caps s at max characters, cutting at the last whole word.
// An ellipsis is appended only when truncation actually occurred; trailing
// punctuation is trimmed first so the result never ends in a doubled ellipsis.
func truncateAtWord(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := s[:max]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	cut = strings.TrimRight(cut, " .,;:!?")
	return cut + "..."
}

func fallbackKeywords(title string, categoryNames []string) []string {
	var words []string
	seen := make(map[string]bool)

	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, `.,;:!?"'()[]`)
		if len(word) <= 4 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if seen[word] {
			continue
		}
		seen[word] = true

		words = append(words, word)
		if len(words) == maxTitleKeywords {
			break
		}
	}

	return append(words, categoryNames...)
}
