package event

import (
	"regexp"
	"strings"
)

var (
	sentenceEndRe  = regexp.MustCompile(`\.\s+`)
	hyphenRe       = regexp.MustCompile(`([^\n])\s*-\s*([^\d])`)
	colonRe        = regexp.MustCompile(`:\s+`)
	parenRe        = regexp.MustCompile(`([^\n])(\()`)
	progressRe     = regexp.MustCompile(`(진행\))(,)`)
	multiNewlineRe = regexp.MustCompile(`\n\n\n+`)
)

// FormatDescription rewrites a free-text description into a line-broken,
// calendar-friendly layout. Hyphens followed by a digit are left alone so
// date ranges like 2024-01-01 survive. The 진행), rule is a narrow special
// case for one known Korean phrasing, not a general comma rule.
func FormatDescription(description string) string {
	if description == "" {
		return description
	}

	improved := description
	improved = sentenceEndRe.ReplaceAllString(improved, ".\n")
	improved = hyphenRe.ReplaceAllString(improved, "${1}\n- ${2}")
	improved = colonRe.ReplaceAllString(improved, ":\n")
	improved = parenRe.ReplaceAllString(improved, "${1}\n${2}")
	improved = progressRe.ReplaceAllString(improved, "${1}\n${2}")
	improved = multiNewlineRe.ReplaceAllString(improved, "\n\n")
	return strings.TrimSpace(improved)
}
