package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_TaggedFence(t *testing.T) {
	response := "Here is the result:\n```json\n{\"title\": \"Team sync\", \"location\": \"Room 204\"}\n```\nLet me know if you need anything else."

	parsed, ok := ExtractJSON(response)
	require.True(t, ok)

	obj, ok := parsed.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Team sync", obj["title"])
	assert.Equal(t, "Room 204", obj["location"])
}

func TestExtractJSON_UntaggedFence(t *testing.T) {
	response := "```\n{\"title\": \"Standup\"}\n```"

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	assert.Equal(t, "Standup", obj["title"])
}

func TestExtractJSON_UntaggedFenceNonObjectSkipped(t *testing.T) {
	// The fence content is prose, not an object; the cascade should fall
	// through and find the object later in the text.
	response := "```\nnot json at all\n```\nresult: {\"title\": \"Review\"}"

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	assert.Equal(t, "Review", obj["title"])
}

func TestExtractJSON_PicksLongestBraceCandidate(t *testing.T) {
	response := `{"a": 1} and also {"title": "Planning", "attendees": ["a@b.com"], "location": "HQ"}`

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	assert.Equal(t, "Planning", obj["title"])
}

func TestExtractJSON_NestedObject(t *testing.T) {
	response := `The analysis: {"eventType": "meeting", "location": {"type": "physical", "room": "3F"}, "confidence": 0.8}`

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	loc, ok := obj["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3F", loc["room"])
}

func TestExtractJSON_Array(t *testing.T) {
	response := `["a@b.com", "c@d.org"]`

	parsed, ok := ExtractJSON(response)
	require.True(t, ok)

	arr, ok := parsed.([]any)
	require.True(t, ok)
	assert.Len(t, arr, 2)
	assert.Equal(t, "a@b.com", arr[0])
}

func TestExtractJSON_DeepNestingRecoversInnerObject(t *testing.T) {
	// The brace-pair stage tolerates one nesting level, so with two levels it
	// latches onto the first self-contained inner object.
	response := `prefix {"a": {"b": {"c": 1}}} suffix`

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	assert.Contains(t, obj, "b")
}

func TestExtractJSON_BraceSpanFallback(t *testing.T) {
	response := `note: {"title": "use {curly} style", "location": "HQ"}`

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	assert.Equal(t, "use {curly} style", obj["title"])
}

func TestExtractJSON_RepairsMalformedJSON(t *testing.T) {
	// Trailing comma fails every strict stage; the repair pass fixes it.
	response := `{"title": "Demo day", "location": "Lab",}`

	obj, ok := ExtractObject(response)
	require.True(t, ok)
	assert.Equal(t, "Demo day", obj["title"])
}

func TestExtractJSON_NoJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain prose", "There is no schedule information in this text."},
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"unclosed brace", "{\"title\": \"never closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ExtractJSON(tt.response)
			assert.False(t, ok)
			assert.Nil(t, parsed)
		})
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips fence markers",
			input:    "```json\n{\"title\": \"x\"}\n```",
			expected: `{"title": "x"}`,
		},
		{
			name:     "peels surrounding prose",
			input:    `Sure, here you go: {"title": "x"} hope that helps`,
			expected: `{"title": "x"}`,
		},
		{
			name:     "unescapes quotes and whitespace",
			input:    `{\"title\": \"x\"}`,
			expected: `{"title": "x"}`,
		},
		{
			name:     "plain text unchanged",
			input:    "no braces here",
			expected: "no braces here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanResponse(tt.input))
		})
	}
}
