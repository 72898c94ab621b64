package analysis

import (
	"regexp"
	"strings"

	"footprint-workers/internal/models"
)

var (
	leadingFence  = regexp.MustCompile("^```(?:json)?\\s*\\n?")
	trailingFence = regexp.MustCompile("\\n?\\s*```\\s*$")

	categoryTokens = func() map[models.Category]*regexp.Regexp {
		out := make(map[models.Category]*regexp.Regexp, len(models.Categories))
		for _, c := range models.Categories {
			out[c] = regexp.MustCompile(`"category":\s*"` + titleCase(c) + `"`)
		}
		return out
	}()
)

// Sanitize strips markdown code fences around generated text and lowercases
// capitalized category values so they match the enum.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	for _, c := range models.Categories {
		text = categoryTokens[c].ReplaceAllString(text, `"category": "`+string(c)+`"`)
	}
	return text
}
