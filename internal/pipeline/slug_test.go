package pipeline

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestMakeSlug(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	suffix := fmt.Sprintf("-%d", now.UnixNano())

	tests := []struct {
		name  string
		title string
		base  string
	}{
		{"simple title", "Markets rally on rate cut", "markets-rally-on-rate-cut"},
		{"punctuation collapses", "Breaking: PM speaks -- live!!", "breaking-pm-speaks-live"},
		{"uppercase lowered", "NASA Launches Probe", "nasa-launches-probe"},
		{"leading and trailing symbols trimmed", "...Hello, World...", "hello-world"},
		{"unicode stripped", "Résumé café", "r-sum-caf"},
		{"empty title falls back", "", "article"},
		{"all symbols falls back", "!!!???", "article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := makeSlug(tt.title, now)
			if got != tt.base+suffix {
				t.Errorf("makeSlug(%q) = %q, want %q", tt.title, got, tt.base+suffix)
			}
		})
	}
}

func TestMakeSlug_TruncatesLongTitles(t *testing.T) {
	title := strings.Repeat("verylongword ", 20)
	now := time.Now()

	slug := makeSlug(title, now)
	base := strings.TrimSuffix(slug, fmt.Sprintf("-%d", now.UnixNano()))

	if len(base) > maxSlugBase {
		t.Errorf("slug base is %d chars, want at most %d", len(base), maxSlugBase)
	}
	if strings.HasSuffix(base, "-") {
		t.Errorf("slug base must not end with a dash: %q", base)
	}
}

func TestMakeSlug_IdenticalTitlesDifferByTimestamp(t *testing.T) {
	t0 := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Nanosecond)

	first := makeSlug("Same headline", t0)
	second := makeSlug("Same headline", t1)

	if first == second {
		t.Errorf("slugs for identical titles at different instants must differ, both were %q", first)
	}
}
