package render

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML neutralizes markup-significant characters. Every renderer routes
// user-authored text (titles, placeholders, options, content, descriptions)
// through this function before interpolation.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
