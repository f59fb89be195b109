package task

import "strings"

var escaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
	"`", "&#96;",
)

// Sanitize replaces markup-significant characters with character
// references. All other characters pass through unchanged.
func Sanitize(s string) string {
	return escaper.Replace(s)
}
