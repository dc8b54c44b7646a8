package blog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// textPolicy strips all markup from single line fields.
	textPolicy = bluemonday.StrictPolicy() //nolint: gochecknoglobals
	// contentPolicy keeps safe formatting in visitor supplied bodies.
	contentPolicy = bluemonday.UGCPolicy() //nolint: gochecknoglobals
)

// cleanText returns s as plain text. The policy escapes entities, which a
// plain text column must not keep.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func cleanContent(s string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(s))
}
