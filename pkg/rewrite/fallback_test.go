package rewrite

import (
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"newsdesk/pkg/feed"
)

func TestFallbackDraft_CleansFeedArtifacts(t *testing.T) {
	item := feed.Item{
		Title:       "PM announces policy<![CDATA[ X ]]>",
		Description: "<p>Details &amp; more...</p>",
		Source:      "NDTV",
	}

	draft := FallbackDraft(item, []string{"India"})

	assert.Equal(t, "PM announces policy X", draft.Title)
	assert.Equal(t, "Details & more...", draft.Excerpt)

	if strings.Contains(draft.Excerpt, "......") {
		t.Errorf("excerpt has doubled ellipsis: %q", draft.Excerpt)
	}
	if !strings.Contains(draft.Content, "Source: NDTV") {
		t.Errorf("body missing attribution, got: %q", draft.Content)
	}
}

func TestFallbackDraft_Deterministic(t *testing.T) {
	item := feed.Item{
		Title:       "Markets rally as inflation cools across major economies",
		Description: "Stocks climbed on Monday after fresh data showed inflation easing.",
		Link:        "https://example.com/markets-rally",
		Source:      "BBC",
	}
	categories := []string{"Business"}

	first := FallbackDraft(item, categories)
	second := FallbackDraft(item, categories)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("fallback draft is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestFallbackDraft_LinksOriginalArticle(t *testing.T) {
	item := feed.Item{
		Title:       "Some headline",
		Description: "Some description",
		Link:        "https://example.com/story",
		Source:      "NDTV",
	}

	draft := FallbackDraft(item, nil)

	if !strings.Contains(draft.Content, `<a href="https://example.com/story"`) {
		t.Errorf("body missing source link, got: %q", draft.Content)
	}
	if !strings.Contains(draft.Content, "NDTV</a>") {
		t.Errorf("body missing linked source name, got: %q", draft.Content)
	}
}

func TestFallbackDraft_TruncatesExcerptAtWordBoundary(t *testing.T) {
	long := strings.Repeat("elaborate commentary ", 20)
	item := feed.Item{
		Title:       "Headline",
		Description: long,
		Source:      "BBC",
	}

	draft := FallbackDraft(item, nil)

	if len(draft.Excerpt) > excerptMaxLen+3 {
		t.Errorf("excerpt too long: %d chars", len(draft.Excerpt))
	}
	if !strings.HasSuffix(draft.Excerpt, "...") {
		t.Errorf("truncated excerpt missing ellipsis: %q", draft.Excerpt)
	}
	body := strings.TrimSuffix(draft.Excerpt, "...")
	if strings.HasSuffix(body, " ") {
		t.Errorf("excerpt ends mid-separator: %q", draft.Excerpt)
	}
	if !strings.HasSuffix(body, "elaborate") && !strings.HasSuffix(body, "commentary") {
		t.Errorf("excerpt not cut at whole word: %q", draft.Excerpt)
	}
}

func TestTruncateAtWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{
			name:  "short input unchanged",
			input: "short text",
			max:   50,
			want:  "short text",
		},
		{
			name:  "exact length unchanged",
			input: "abcde",
			max:   5,
			want:  "abcde",
		},
		{
			name:  "cuts at last whole word",
			input: "one two three four",
			max:   12,
			want:  "one two...",
		},
		{
			name:  "no doubled ellipsis when cut lands on dots",
			input: "ends with dots... and then continues on and on",
			max:   20,
			want:  "ends with dots...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateAtWord(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackKeywords(t *testing.T) {
	title := "Government announces sweeping reforms which would reshape housing policy rules nationwide"

	got := fallbackKeywords(title, []string{"Politics"})

	// "which" and "would" are stop words; short words are dropped; capped at
	// five title words plus the category names.
	want := []string{"government", "announces", "sweeping", "reforms", "reshape", "Politics"}
	assert.Equal(t, want, got)
}

func TestFallbackKeywords_SkipsShortAndDuplicateWords(t *testing.T) {
	got := fallbackKeywords("Rain rain go away: heavy rains flood the city", nil)

	for _, w := range got {
		if len(w) <= 4 {
			t.Errorf("keyword %q is too short", w)
		}
	}
}
