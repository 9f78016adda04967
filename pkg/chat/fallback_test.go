package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitThinkingFallback(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantThinking string
		wantText     string
	}{
		{
			name:         "think wrapper with trailing response",
			input:        "<think>weighing the options</think>\nThe answer is 42.",
			wantThinking: "weighing the options",
			wantText:     "The answer is 42.",
		},
		{
			name:         "zero-width joiner separator",
			input:        "internal reasoning\u200dVisible response here",
			wantThinking: "internal reasoning",
			wantText:     "Visible response here",
		},
		{
			name:         "last joiner wins when several appear",
			input:        "a\u200db\u200dfinal answer",
			wantThinking: "a\u200db",
			wantText:     "final answer",
		},
		{
			name:         "no separator treats everything as response",
			input:        "  just some text  ",
			wantThinking: "",
			wantText:     "just some text",
		},
		{
			name:         "think wrapper with no trailer falls through",
			input:        "<think>only reasoning</think>",
			wantThinking: "",
			wantText:     "<think>only reasoning</think>",
		},
		{
			name:         "too-short trailer is not split off",
			input:        "reasoning\u200d.",
			wantThinking: "",
			wantText:     "reasoning\u200d.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thinking, text := SplitThinkingFallback(tt.input)
			assert.Equal(t, tt.wantThinking, thinking)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestStripUserMetadataPrefix(t *testing.T) {
	assert.Equal(t, "hello",
		StripUserMetadataPrefix("[2024-01-01 10:00:00 UTC] hello"))
	assert.Equal(t, "no prefix here",
		StripUserMetadataPrefix("no prefix here"))
	assert.Equal(t, "[not a date] stays",
		StripUserMetadataPrefix("[not a date] stays"))
}

func TestStripFinalTags(t *testing.T) {
	assert.Equal(t, "the answer", StripFinalTags("<final>the answer</final>"))
	assert.Equal(t, "a b", StripFinalTags("<final>a</final> <final>b</final>"))
	assert.Equal(t, "untouched", StripFinalTags("untouched"))
}
