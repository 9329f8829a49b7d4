package attendees

import (
	"regexp"
	"sort"
	"strings"
)

// The model returns attendees in whatever shape it feels like: bare email
// strings, {"email": ...} objects, or single-key objects with an arbitrary
// key. ParseRaw is the one place that shape-sniffing happens; everything
// downstream works with plain email strings.

// Attendee is the calendar wire representation of a validated attendee.
type Attendee struct {
	Email string `json:"email"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseRaw extracts a candidate email string from one raw attendee entry.
// The boolean is false when the entry has no usable string at all; the
// returned string is not yet validated.
func ParseRaw(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), true
	case map[string]any:
		if email, ok := v["email"].(string); ok {
			return strings.TrimSpace(email), true
		}
		// Best-effort: take the first key's value. Map iteration order is
		// unspecified, so sort keys for a deterministic pick.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s, ok := v[k].(string); ok {
				return strings.TrimSpace(s), true
			}
		}
		return "", false
	default:
		return "", false
	}
}

// IsValidEmail checks email syntax: exactly one @, a domain with at least two
// dot-separated labels, and a top-level label of length 2 or more.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	if !emailRe.MatchString(email) {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	domainParts := strings.Split(parts[1], ".")
	if len(domainParts) < 2 {
		return false
	}

	tld := domainParts[len(domainParts)-1]
	return len(tld) >= 2
}

// Validate parses, validates, and deduplicates a raw attendee list into valid
// email strings in first-seen order. Dedup is case-insensitive; the first
// spelling wins.
func Validate(raw []any) []string {
	seen := make(map[string]bool)
	valid := make([]string, 0, len(raw))

	for _, entry := range raw {
		email, ok := ParseRaw(entry)
		if !ok || email == "" {
			continue
		}
		key := strings.ToLower(email)
		if !IsValidEmail(email) || seen[key] {
			continue
		}
		seen[key] = true
		valid = append(valid, email)
	}

	return valid
}

// Merge concatenates two raw attendee lists and validates the result. Used
// when reconciling the basic extraction with the detailed analysis.
func Merge(a, b []any) []string {
	combined := make([]any, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return Validate(combined)
}

// FilterToPayload converts a raw attendee list into the calendar wire shape.
func FilterToPayload(raw []any) []Attendee {
	valid := Validate(raw)
	payload := make([]Attendee, len(valid))
	for i, email := range valid {
		payload[i] = Attendee{Email: email}
	}
	return payload
}
