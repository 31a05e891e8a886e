package metric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadability(t *testing.T) {
	for _, r := range Readabilities() {
		parsed, err := ParseReadability(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	parsed, err := ParseReadability("flesch.kincaid")
	require.NoError(t, err)
	assert.Equal(t, FleschKincaid, parsed)

	_, err = ParseReadability("Gunning.Fog")
	assert.ErrorIs(t, err, ErrorUnsupportedMetric)
}

func TestScoreKnownSentence(t *testing.T) {
	// "The cat sat." is 1 sentence, 3 words, 3 syllables, all familiar.
	const input = "The cat sat."

	assert.InDelta(t, 206.835-1.015*3-84.6*1, Flesch.Score(input), 1e-9)
	assert.InDelta(t, 0.39*3+11.8*1-15.59, FleschKincaid.Score(input), 1e-9)
	assert.InDelta(t, 3.1291, SMOG.Score(input), 1e-9)
	assert.InDelta(t, 0.0496*3, DaleChall.Score(input), 1e-9)
}

func TestDaleChallDifficultPenalty(t *testing.T) {
	// All five words are off the familiar list: 100% difficult, penalty applies.
	score := DaleChall.Score("Quantitative easing distorts macroeconomic equilibria.")
	expected := 0.1579*100 + 0.0496*5 + 3.6365
	assert.InDelta(t, expected, score, 1e-9)
}

func TestScoreEmptyTextIsMissing(t *testing.T) {
	for _, r := range Readabilities() {
		assert.True(t, math.IsNaN(r.Score("")), r.String())
		assert.True(t, math.IsNaN(r.Score("   ")), r.String())
	}
}

func TestLongerWordsRaiseGradeLevel(t *testing.T) {
	simple := FleschKincaid.Score("The cat sat. The dog ran.")
	complex := FleschKincaid.Score("Parliamentary representatives deliberated extensively. Institutional accountability deteriorated significantly.")
	assert.Greater(t, complex, simple)
}
