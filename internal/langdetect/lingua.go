package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

// Samples shorter than this many letters are too ambiguous to report.
const minSampleLetters = 6

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Detect returns the ISO 639-1 code of the most likely language of text, or
// an empty string when the sample is too short or detection is inconclusive.
// Used as a local fallback when the provider reports no detected language.
func Detect(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minSampleLetters {
		return ""
	}

	lang, ok := sharedDetector().DetectLanguageOf(sample)
	if !ok {
		return ""
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

func sharedDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
