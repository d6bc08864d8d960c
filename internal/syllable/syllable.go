// Package syllable estimates how many spoken syllables a word or a
// block of text has.
package syllable

import (
	"strings"
	"unicode"
)

// Estimator returns a non-negative syllable estimate for a word or a
// whole text.
type Estimator interface {
	Estimate(text string) int
}

// EstimatorFunc adapts a function to Estimator.
type EstimatorFunc func(text string) int

// Estimate implements Estimator.
func (f EstimatorFunc) Estimate(text string) int { return f(text) }

// Heuristic counts vowel groups per word with corrections for common
// English endings. Every word with at least one letter has one or more
// syllables.
type Heuristic struct{}

// Estimate implements Estimator. Text without letters has zero
// syllables.
func (Heuristic) Estimate(text string) int {
	total := 0
	for _, w := range words(text) {
		total += Word(w)
	}
	return total
}

// Word estimates the syllables of a single word.
func Word(word string) int {
	w := letters(word)
	if w == "" {
		return 0
	}
	if len(w) <= 3 {
		return 1
	}

	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	last3 := w[len(w)-3]
	switch {
	case strings.HasSuffix(w, "le") && !isVowel(last3):
		// consonant + "le" is its own syllable: ta-ble
	case strings.HasSuffix(w, "e"):
		count--
	case strings.HasSuffix(w, "ed") && last3 != 't' && last3 != 'd':
		count--
	case strings.HasSuffix(w, "es") && !sibilant(w[:len(w)-2]):
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

// words splits text on anything that is not a letter or apostrophe.
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '’'
	})
}

// letters lower-cases word and keeps only its ASCII letters.
func letters(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// sibilant reports whether stem ends in a sound that keeps a following
// "es" audible: boxes, wishes, pages, places.
func sibilant(stem string) bool {
	for _, suffix := range []string{"s", "x", "z", "ch", "sh", "g", "c"} {
		if strings.HasSuffix(stem, suffix) {
			return true
		}
	}
	return false
}
