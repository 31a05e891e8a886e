package metric

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/jdpolicano/go-corpustat/internal/text"
)

// familiarWordsData is an abridged Dale-Chall familiar-word list. Words not
// on the list count as difficult for the Dale.Chall formula.
//
//go:embed familiar_words.txt
var familiarWordsData string
var familiarWords = initFamiliarWords()

func initFamiliarWords() map[string]any {
	lines := strings.Split(familiarWordsData, "\n")
	words := make(map[string]any, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word != "" {
			words[word] = nil
		}
	}
	return words
}

// Readability enumerates the supported text-complexity formulas.
type Readability int

const (
	FleschKincaid Readability = iota
	SMOG
	Flesch
	DaleChall
)

// Readabilities returns the full supported set in canonical order.
func Readabilities() []Readability {
	return []Readability{FleschKincaid, SMOG, Flesch, DaleChall}
}

func (r Readability) String() string {
	switch r {
	case FleschKincaid:
		return "Flesch.Kincaid"
	case SMOG:
		return "SMOG"
	case Flesch:
		return "Flesch"
	case DaleChall:
		return "Dale.Chall"
	default:
		return "unknown"
	}
}

// ParseReadability maps a formula name to its enum value, case-insensitively.
func ParseReadability(name string) (Readability, error) {
	for _, r := range Readabilities() {
		if strings.EqualFold(r.String(), name) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("readability %q: %w", name, ErrorUnsupportedMetric)
}

// Score computes the formula over one document's raw text. Documents with no
// sentences or no words yield NaN, the pipeline's missing value.
func (r Readability) Score(raw string) float64 {
	plain := text.StripMarkup(raw)
	stats := text.Surface(plain)
	if stats.Sentences == 0 || stats.Words == 0 {
		return math.NaN()
	}

	words := float64(stats.Words)
	sentences := float64(stats.Sentences)
	syllables := float64(stats.Syllables)

	switch r {
	case Flesch:
		return 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
	case FleschKincaid:
		return 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
	case SMOG:
		return 1.0430*math.Sqrt(float64(stats.Polysyllables)*30/sentences) + 3.1291
	case DaleChall:
		difficult := countDifficultWords(plain)
		pctDifficult := 100 * float64(difficult) / words
		score := 0.1579*pctDifficult + 0.0496*(words/sentences)
		if pctDifficult > 5 {
			score += 3.6365
		}
		return score
	default:
		return math.NaN()
	}
}

func countDifficultWords(raw string) int {
	difficult := 0
	for _, w := range text.ScanAllWords(raw) {
		if _, familiar := familiarWords[w]; !familiar && !isNumeric(w) {
			difficult++
		}
	}
	return difficult
}

func isNumeric(w string) bool {
	for _, r := range w {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(w) > 0
}
