package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds the re-sanitising of text whose stripped markup
// left new markup behind.
const maxSanitizePasses = 4

// SanitizeText strips any markup from user-entered text (room, project and
// task names), collapses runs of whitespace and trims the result. Entities
// typed by the user stay literal, so sanitising the output again returns it
// unchanged. The returned string is plain text; escaping happens at render
// time.
func SanitizeText(s string) string {
	out := sanitizeOnce(s)
	for range maxSanitizePasses {
		next := sanitizeOnce(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func sanitizeOnce(s string) string {
	escaped := strings.ReplaceAll(s, "&", "&amp;")
	cleaned := html.UnescapeString(strictPolicy.Sanitize(escaped))
	return strings.Join(strings.Fields(cleaned), " ")
}
