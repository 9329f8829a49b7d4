package extractor

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// LLM replies are unreliable about code fences and surrounding prose, so JSON
// recovery runs as an ordered list of strategies, each producing a candidate
// substring that must survive a strict JSON parse. The first candidate that
// parses wins; if every strategy fails the response carries no structured data.

var (
	jsonFenceRe  = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	anyFenceRe   = regexp.MustCompile("```\\s*([\\s\\S]*?)\\s*```")
	bracePairRe  = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
	lenientObjRe = regexp.MustCompile(`\{[\s\S]*?\}`)
	arrayRe      = regexp.MustCompile(`\[[\s\S]*\]`)
	fenceMarkRe  = regexp.MustCompile("```[a-zA-Z]*\n?")
	braceSpanRe  = regexp.MustCompile(`(?s)^[^{]*(\{.*\})[^}]*$`)
)

type strategy func(text string) (string, bool)

var strategies = []strategy{
	taggedFence,
	untaggedFence,
	longestBracePair,
	lenientObject,
	firstArray,
	braceSpan,
}

// ExtractJSON pulls a JSON value out of raw LLM response text. The boolean is
// false when no strategy produced parseable JSON; callers must treat that as
// "no structured data", not as an error.
func ExtractJSON(responseText string) (any, bool) {
	text := strings.TrimSpace(responseText)
	if text == "" {
		return nil, false
	}

	for _, strat := range strategies {
		candidate, ok := strat(text)
		if !ok {
			continue
		}
		if parsed, ok := tryParse(candidate); ok {
			return parsed, true
		}
	}

	// Last resort: the strict cascade failed, so let jsonrepair fix up the
	// brace-bounded span (trailing commas, single quotes, bare keys).
	if candidate, ok := braceSpan(text); ok {
		if fixed, err := jsonrepair.JSONRepair(candidate); err == nil {
			if parsed, ok := tryParse(fixed); ok {
				return parsed, true
			}
		}
	}

	return nil, false
}

// ExtractObject is ExtractJSON narrowed to object results.
func ExtractObject(responseText string) (map[string]any, bool) {
	parsed, ok := ExtractJSON(responseText)
	if !ok {
		return nil, false
	}
	obj, ok := parsed.(map[string]any)
	return obj, ok
}

// CleanResponse strips code fence markers, peels text surrounding the outermost
// object, and unescapes over-escaped quotes and whitespace so a reply that was
// double-encoded by the model can be reparsed.
func CleanResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = fenceMarkRe.ReplaceAllString(cleaned, "")
	cleaned = braceSpanRe.ReplaceAllString(cleaned, "$1")
	cleaned = strings.ReplaceAll(cleaned, `\"`, `"`)
	cleaned = strings.ReplaceAll(cleaned, `\n`, "\n")
	cleaned = strings.ReplaceAll(cleaned, `\t`, "\t")
	return cleaned
}

func tryParse(candidate string) (any, bool) {
	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}

func taggedFence(text string) (string, bool) {
	m := jsonFenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func untaggedFence(text string) (string, bool) {
	m := anyFenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	content := strings.TrimSpace(m[1])
	if !strings.HasPrefix(content, "{") || !strings.HasSuffix(content, "}") {
		return "", false
	}
	return content, true
}

// longestBracePair tolerates one level of nesting and prefers the longest
// candidate when several brace groups appear in the reply.
func longestBracePair(text string) (string, bool) {
	matches := bracePairRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	longest := matches[0]
	for _, m := range matches[1:] {
		if len(m) > len(longest) {
			longest = m
		}
	}
	return longest, true
}

func lenientObject(text string) (string, bool) {
	m := lenientObjRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

func firstArray(text string) (string, bool) {
	m := arrayRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
