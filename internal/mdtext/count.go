package mdtext

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// A word character followed by terminal punctuation and then
	// whitespace or end of text.
	sentenceEnd = regexp.MustCompile(`\w[.?!](\s|$)`)
	// A word character, an optional colon, then a line break. Catches
	// unpunctuated list-style lines in text that still has newlines.
	lineEnd = regexp.MustCompile(`\w:?\n`)

	wordToken = regexp.MustCompile(`\w+(?:['’]\w+)*`)
)

// CountWords splits text on spaces and counts the non-empty tokens.
func CountWords(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, tok := range strings.Split(text, " ") {
		if tok != "" {
			n++
		}
	}
	return n
}

// CountCharacters returns the number of runes in text once all
// whitespace is removed. Punctuation is counted.
func CountCharacters(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CountSentences approximates the number of sentences in text by
// counting terminal punctuation after a word and unpunctuated line
// ends. Non-blank text always has at least one sentence; blank text
// has none.
func CountSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := len(sentenceEnd.FindAllStringIndex(text, -1)) +
		len(lineEnd.FindAllStringIndex(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// Tokens returns the word-character sequences of text, lower-cased.
// An apostrophe between word characters stays inside the token.
func Tokens(text string) []string {
	raw := wordToken.FindAllString(text, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		out = append(out, strings.ToLower(tok))
	}
	return out
}
