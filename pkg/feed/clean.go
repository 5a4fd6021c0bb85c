package feed

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripCDATA removes CDATA wrapper markers without touching the wrapped text.
// Must run before tag stripping: the opening marker carries no '>' of its own,
// so the tag pattern would otherwise swallow the wrapped text with the marker.
func StripCDATA(s string) string {
	s = strings.ReplaceAll(s, "<![CDATA[", "")
	return strings.ReplaceAll(s, "]]>", "")
}

// CleanText normalizes feed-sourced text: CDATA markers and markup tags
// removed, HTML entities decoded, whitespace collapsed.
func CleanText(s string) string {
	s = StripCDATA(s)
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
