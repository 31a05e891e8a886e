package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "just  some   words",
			expected: "just some words",
		},
		{
			name:     "tags removed",
			input:    "<p>Members of <b>parliament</b> voted.</p>",
			expected: "Members of parliament voted.",
		},
		{
			name:     "script content dropped",
			input:    "<p>visible</p><script>var hidden = 1;</script>",
			expected: "visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkup(tt.input))
		})
	}
}
