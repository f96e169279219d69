package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

const maxTextLength = 200

// cleanID trims identifiers; they are compared verbatim afterwards. The result
// never aliases the request buffer fiber parsed it from.
func cleanID(s string) string {
	return strings.Clone(strings.TrimSpace(strings.ReplaceAll(s, "\x00", "")))
}

// cleanText strips markup from free text. The stored value is plain text:
// entities the policy emits are decoded again, and HTML output escapes at render time.
func cleanText(s string) string {
	s = html.UnescapeString(htmlPolicy.Sanitize(cleanID(s)))
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxTextLength {
		s = string(r[:maxTextLength])
	}
	return strings.Clone(s)
}
