package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanWordsFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lowercases and splits on punctuation",
			input:    "Budget, Economy; TAX!",
			expected: []string{"budget", "economy", "tax"},
		},
		{
			name:     "drops stop words",
			input:    "the economy and the budget",
			expected: []string{"economy", "budget"},
		},
		{
			name:     "drops bare integers",
			input:    "budget 2018 deficit",
			expected: []string{"budget", "deficit"},
		},
		{
			name:     "keeps alphanumeric mixes",
			input:    "g7 summit",
			expected: []string{"g7", "summit"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := ScanWordsFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}

func TestScanAllWordsKeepsStopWords(t *testing.T) {
	words := ScanAllWords("The cat sat on the mat.")
	assert.Equal(t, []string{"the", "cat", "sat", "on", "the", "mat"}, words)
}
