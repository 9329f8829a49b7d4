package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sentence break after period",
			input:    "First sentence. Second sentence.",
			expected: "First sentence.\nSecond sentence.",
		},
		{
			name:     "hyphen list gets its own line",
			input:    "Agenda - review items",
			expected: "Agenda\n- review items",
		},
		{
			name:     "date range hyphen preserved",
			input:    "기간: 2024-01-01",
			expected: "기간:\n2024-01-01",
		},
		{
			name:     "colon break",
			input:    "장소: 회의실 A동",
			expected: "장소:\n회의실 A동",
		},
		{
			name:     "parenthesis break",
			input:    "발표자료 (초안)",
			expected: "발표자료 \n(초안)",
		},
		{
			name:     "progress comma special case",
			input:    "1차 검토 진행), 2차는 추후",
			expected: "1차 검토 진행)\n, 2차는 추후",
		},
		{
			name:     "collapses runs of newlines",
			input:    "위\n\n\n\n아래",
			expected: "위\n\n아래",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  본문  ",
			expected: "본문",
		},
		{
			name:     "empty unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDescription(tt.input))
		})
	}
}

func TestFormatDescription_Deterministic(t *testing.T) {
	input := "회의 안건. 일정 공유 - 전체 (필수)"
	assert.Equal(t, FormatDescription(input), FormatDescription(input))
}
