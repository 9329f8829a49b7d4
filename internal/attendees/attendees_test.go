package attendees

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"user@example.com", true},
		{"user@sub.example.com", true},
		{"a@b.c", false}, // single-char TLD
		{"a@b.co", true}, // two-char TLD boundary
		{"user@localhost", false},
		{"user@@example.com", false},
		{"not-an-email", false},
		{"", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidEmail(tt.email))
		})
	}
}

func TestParseRaw(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected string
		ok       bool
	}{
		{"plain string", "a@b.com", "a@b.com", true},
		{"padded string", "  a@b.com  ", "a@b.com", true},
		{"email field", map[string]any{"email": "c@d.org"}, "c@d.org", true},
		{"arbitrary key", map[string]any{"name": "not an address"}, "not an address", true},
		{"non-string value", map[string]any{"count": float64(3)}, "", false},
		{"nil", nil, "", false},
		{"number", float64(42), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRaw(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidate_MixedShapes(t *testing.T) {
	raw := []any{
		"a@b.com",
		"not-an-email",
		map[string]any{"email": "c@d.org"},
		map[string]any{"name": "no email field, just a bad key"},
	}

	assert.Equal(t, []string{"a@b.com", "c@d.org"}, Validate(raw))
}

func TestValidate_CaseInsensitiveDedup(t *testing.T) {
	raw := []any{"John@Co.com", "john@co.com", "JOHN@CO.COM", "jane@co.com"}

	// First spelling wins, first-seen order preserved.
	assert.Equal(t, []string{"John@Co.com", "jane@co.com"}, Validate(raw))
}

func TestValidate_Empty(t *testing.T) {
	assert.Empty(t, Validate(nil))
	assert.Empty(t, Validate([]any{}))
	assert.Empty(t, Validate([]any{"", "   ", map[string]any{}}))
}

func TestMerge(t *testing.T) {
	basic := []any{"a@b.com", map[string]any{"email": "c@d.org"}}
	analysis := []any{"A@B.COM", "e@f.net", "broken@"}

	assert.Equal(t, []string{"a@b.com", "c@d.org", "e@f.net"}, Merge(basic, analysis))
}

func TestFilterToPayload(t *testing.T) {
	raw := []any{"a@b.com", "junk", map[string]any{"email": "c@d.org"}}

	payload := FilterToPayload(raw)
	require.Len(t, payload, 2)
	assert.Equal(t, "a@b.com", payload[0].Email)
	assert.Equal(t, "c@d.org", payload[1].Email)

	// The wire shape must be {email} objects, never bare strings.
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"a@b.com"},{"email":"c@d.org"}]`, string(data))
}
