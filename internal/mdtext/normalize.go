package mdtext

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize strips Markdown from raw and collapses whitespace.
func Normalize(raw string) string {
	return NormalizeWith(Markdown{}, raw)
}

// maxStripPasses bounds NormalizeWith. Every pass that changes its
// input removes markup, so real documents settle in two or three.
const maxStripPasses = 16

// NormalizeWith strips markup from raw using s, then collapses every
// whitespace run into a single space and trims the result. Input is
// converted to Unicode NFC first. The empty string normalizes to itself.
//
// Code spans and unescaped punctuation can leave text that parses as
// markup again, so stripping repeats until the output stops changing.
// The result is therefore a fixed point: NormalizeWith(s, out) == out.
func NormalizeWith(s Stripper, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if s == nil {
		s = Plain{}
	}
	out := CollapseWhitespace(s.Strip(norm.NFC.Bytes([]byte(raw))))
	for i := 0; i < maxStripPasses && out != ""; i++ {
		next := CollapseWhitespace(s.Strip([]byte(out)))
		if next == out {
			break
		}
		out = next
	}
	return out
}

// CollapseWhitespace replaces each whitespace run in s with one space
// and trims leading and trailing whitespace.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
