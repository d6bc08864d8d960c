package lint

import (
	"fmt"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Severity indicates how a report affects the exit status.
type Severity string

// Severity levels.
const (
	OK    Severity = "ok"
	Error Severity = "error"
)

// Report is the outcome of scoring one document, or one paragraph of
// it when Line is set.
type Report struct {
	File string
	// Line is the 1-based line a scored paragraph starts on, or 0 for
	// the whole document.
	Line    int
	Kind    mdtext.Kind
	Result  readability.Result
	Metrics readability.Metrics
	// Severity is Error when the score crosses a configured threshold.
	Severity Severity
	// Message describes the crossed threshold, e.g. "above max 12".
	Message string
}

// Failed reports whether the score crossed a threshold.
func (r Report) Failed() bool { return r.Severity == Error }

// Status returns the status text, or "no score" when none applies.
func (r Report) Status() string {
	if !r.Result.OK {
		return "no score"
	}
	return r.Result.String()
}

// Location returns "file", "file:line", or "" for a whole document
// read from stdin. Paragraphs of stdin are located as "<stdin>:line".
func (r Report) Location() string {
	switch {
	case r.Line > 0 && r.File == "":
		return fmt.Sprintf("<stdin>:%d", r.Line)
	case r.Line > 0:
		return fmt.Sprintf("%s:%d", r.File, r.Line)
	default:
		return r.File
	}
}
