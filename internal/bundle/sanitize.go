package bundle

import (
	"regexp"
	"strings"
	"time"
)

var (
	nonAlnumPattern      = regexp.MustCompile(`[^a-zA-Z0-9]`)
	underscoreRunPattern = regexp.MustCompile(`_+`)
)

// SanitizeFileName maps a survey title to a filesystem-safe slug: lowercase,
// non-alphanumerics become single underscores, trimmed, at most 50 characters.
// A title of nothing but special characters yields the empty string; callers
// needing a non-empty name use Name.
func SanitizeFileName(name string) string {
	s := nonAlnumPattern.ReplaceAllString(name, "_")
	s = underscoreRunPattern.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	s = strings.ToLower(s)
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// Name builds the archive filename <sanitized-title>-<timestamp>.zip.
func Name(title string, now time.Time) string {
	safe := SanitizeFileName(title)
	if safe == "" {
		safe = "survey"
	}
	timestamp := now.UTC().Format("2006-01-02T15-04-05")
	return safe + "-" + timestamp + ".zip"
}
