package text

import (
	"github.com/pemistahl/lingua-go"
)

// Detector tags documents with their most likely language. The speeches
// corpus mixes several EU languages; readability formulas are calibrated for
// English, so callers use the tag to restrict scoring.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector restricted to the given languages. A smaller
// candidate set keeps detection fast and the models small.
func NewDetector(langs ...lingua.Language) *Detector {
	if len(langs) == 0 {
		langs = []lingua.Language{
			lingua.English,
			lingua.German,
			lingua.French,
			lingua.Spanish,
			lingua.Italian,
			lingua.Dutch,
		}
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()
	return &Detector{detector}
}

// Detect returns the ISO 639-1 code of the most likely language, or "" when
// the text carries too little signal to decide.
func (d *Detector) Detect(s string) string {
	lang, ok := d.detector.DetectLanguageOf(s)
	if !ok {
		return ""
	}
	return lang.IsoCode639_1().String()
}
