package heuristics

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Fallback title recovery for when the model returns nothing parseable. All of
// this is fixed pattern matching over the source text, not language analysis.

var labelPrefixRe = regexp.MustCompile(`^([^:]+):`)

// Domain keyword patterns tried against the first line, most specific first.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(팀\s*미팅)`),
	regexp.MustCompile(`(고객\s*상담)`),
	regexp.MustCompile(`(프로젝트\s*[가-힣a-zA-Z]+)`),
	regexp.MustCompile(`(?i)(team\s*meeting)`),
	regexp.MustCompile(`(?i)(client\s*consult\w*)`),
	regexp.MustCompile(`([가-힣a-zA-Z]+\s*미팅)`),
	regexp.MustCompile(`([가-힣a-zA-Z]+\s*회의)`),
	regexp.MustCompile(`([가-힣a-zA-Z]+\s*이벤트)`),
	regexp.MustCompile(`(?i)([a-zA-Z가-힣]+\s*(?:meeting|briefing|event|deploy|deadline))`),
}

var meaningfulRunRe = regexp.MustCompile(`^([가-힣a-zA-Z0-9\s\-\(\)]{2,20})`)

var timeExpressionRes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}시`),
	regexp.MustCompile(`^\d{1,2}분`),
	regexp.MustCompile(`^오전`),
	regexp.MustCompile(`^오후`),
	regexp.MustCompile(`^내일`),
	regexp.MustCompile(`^오늘`),
	regexp.MustCompile(`^다음주`),
	regexp.MustCompile(`^\d{4}년`),
	regexp.MustCompile(`^\d{1,2}월`),
	regexp.MustCompile(`^\d{1,2}일`),
	regexp.MustCompile(`^월요일`),
	regexp.MustCompile(`^화요일`),
	regexp.MustCompile(`^수요일`),
	regexp.MustCompile(`^목요일`),
	regexp.MustCompile(`^금요일`),
	regexp.MustCompile(`^토요일`),
	regexp.MustCompile(`^일요일`),
	regexp.MustCompile(`(?i)^(?:today|tomorrow|next week)`),
	regexp.MustCompile(`(?i)^(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`(?i)^\d{1,2}(?::\d{2})?\s*(?:am|pm)`),
}

var commonWords = map[string]bool{
	"이": true, "그": true, "저": true, "이것": true, "그것": true, "저것": true,
	"있": true, "없": true, "하": true, "되": true, "보": true, "들": true, "것": true,
	"일": true, "때": true, "곳": true, "수": true, "말": true, "년": true, "월": true,
	"시": true, "분": true, "초": true, "오전": true, "오후": true, "내일": true, "오늘": true,
	"회의": true, "미팅": true, "약속": true, "일정": true, "이벤트": true,
	"the": true, "a": true, "an": true, "and": true, "this": true, "that": true,
	"meeting": true, "event": true, "schedule": true, "today": true, "tomorrow": true,
}

var (
	hangulRunRe = regexp.MustCompile(`[가-힣]{2,}`)
	latinRunRe  = regexp.MustCompile(`[a-zA-Z]{3,}`)
	digitMixRe  = regexp.MustCompile(`[가-힣a-zA-Z]*\d+[가-힣a-zA-Z]*`)
)

// ExtractTitle recovers an event title from raw source text. It works on the
// first non-blank line: a short "label:" prefix, then the domain keyword
// patterns, then the first meaningful token run; failing those, the 1-2 longest
// keywords from the whole text. Returns false when nothing qualifies.
func ExtractTitle(sourceText string) (string, bool) {
	firstLine := ""
	for _, line := range strings.Split(sourceText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			firstLine = trimmed
			break
		}
	}

	if firstLine != "" {
		if m := labelPrefixRe.FindStringSubmatch(firstLine); m != nil {
			title := strings.TrimSpace(m[1])
			n := utf8.RuneCountInString(title)
			if n >= 2 && n <= 30 && !IsCommonWord(title) {
				return title, true
			}
		}

		for _, pattern := range keywordPatterns {
			if m := pattern.FindStringSubmatch(firstLine); m != nil {
				title := strings.TrimSpace(m[1])
				n := utf8.RuneCountInString(title)
				if n >= 2 && n <= 30 {
					return title, true
				}
			}
		}

		if m := meaningfulRunRe.FindStringSubmatch(firstLine); m != nil {
			title := strings.TrimSpace(m[1])
			if title != "" && !IsCommonWord(title) && !IsTimeExpression(title) {
				return title, true
			}
		}
	}

	meaningful := make([]string, 0, 2)
	for _, keyword := range ExtractKeywords(sourceText) {
		if IsCommonWord(keyword) || IsTimeExpression(keyword) {
			continue
		}
		meaningful = append(meaningful, keyword)
		if len(meaningful) == 2 {
			break
		}
	}
	if len(meaningful) > 0 {
		return strings.Join(meaningful, " "), true
	}

	return "", false
}

// IsTimeExpression reports whether text starts with a literal time or date
// token (clock markers, day-of-week names, relative-day words).
func IsTimeExpression(text string) bool {
	for _, re := range timeExpressionRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// IsCommonWord reports whether the word is grammatical filler or a generic
// scheduling noun that makes a useless title.
func IsCommonWord(word string) bool {
	return commonWords[strings.ToLower(word)]
}

// ExtractKeywords collects candidate title tokens from the whole text: Hangul
// runs of 2+, Latin runs of 3+, and alphanumeric tokens containing a digit.
// Deduplicated, sorted longest first, top five.
func ExtractKeywords(text string) []string {
	var all []string
	all = append(all, hangulRunRe.FindAllString(text, -1)...)
	all = append(all, latinRunRe.FindAllString(text, -1)...)
	all = append(all, digitMixRe.FindAllString(text, -1)...)

	seen := make(map[string]bool, len(all))
	unique := make([]string, 0, len(all))
	for _, kw := range all {
		if !seen[kw] {
			seen[kw] = true
			unique = append(unique, kw)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return utf8.RuneCountInString(unique[i]) > utf8.RuneCountInString(unique[j])
	})

	if len(unique) > 5 {
		unique = unique[:5]
	}
	return unique
}
