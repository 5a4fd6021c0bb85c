package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const maxSlugBase = 80

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// makeSlug derives a URL slug from the title, suffixed with a nanosecond
// timestamp so duplicate titles within the same run still get distinct slugs.
func makeSlug(title string, now time.Time) string {
	s := strings.ToLower(title)
	s = slugPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > maxSlugBase {
		s = strings.TrimRight(s[:maxSlugBase], "-")
	}
	if s == "" {
		s = "article"
	}

	return fmt.Sprintf("%s-%d", s, now.UnixNano())
}
