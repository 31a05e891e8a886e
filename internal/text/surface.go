package text

import (
	"strings"
	"unicode"
)

// SurfaceStats holds the raw counts the readability formulas are computed
// from. Counts come from the full token stream, not the stop-word filtered
// one.
type SurfaceStats struct {
	Sentences     int
	Words         int
	Syllables     int
	Polysyllables int // words with three or more syllables
	Characters    int // letters and digits only
}

// Surface computes sentence, word, and syllable counts for a raw text.
func Surface(s string) SurfaceStats {
	words := ScanAllWords(s)
	stats := SurfaceStats{
		Sentences: CountSentences(s),
		Words:     len(words),
	}
	for _, w := range words {
		syl := CountSyllables(w)
		stats.Syllables += syl
		if syl >= 3 {
			stats.Polysyllables++
		}
		stats.Characters += len([]rune(w))
	}
	return stats
}

// CountSentences counts terminal punctuation runs. A run of ".!?" counts as
// one boundary, so ellipses and "?!" do not inflate the count. Text with
// words but no terminator counts as a single sentence.
func CountSentences(s string) int {
	count := 0
	inTerminator := false
	sawWord := false
	sinceBoundary := false
	for _, r := range s {
		switch {
		case r == '.' || r == '!' || r == '?':
			if !inTerminator && sinceBoundary {
				count++
				sinceBoundary = false
			}
			inTerminator = true
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			inTerminator = false
			sawWord = true
			sinceBoundary = true
		default:
			inTerminator = false
		}
	}
	if sinceBoundary && sawWord {
		count++
	}
	return count
}

// CountSyllables estimates syllables in a single word by counting vowel
// groups, with a silent-e adjustment. Every word has at least one syllable.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// silent trailing e: "care" has one spoken vowel group
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
