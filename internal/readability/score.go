package readability

import (
	"fmt"
	"math"
	"strconv"
)

// Metrics holds the text statistics the formulas are computed from.
// All counts are non-negative. Sentences is at least 1 whenever Words
// is non-zero.
type Metrics struct {
	Words          int `json:"words"`
	Sentences      int `json:"sentences"`
	Characters     int `json:"characters"`
	Syllables      int `json:"syllables"`
	DifficultWords int `json:"difficult_words"`
	Polysyllables  int `json:"polysyllables"`
}

// DifficultWordPercent returns difficult words per 100 words.
func (m Metrics) DifficultWordPercent() float64 {
	if m.Words == 0 {
		return 0
	}
	return float64(m.DifficultWords) / float64(m.Words) * 100
}

// Result is a computed score. OK is false when no score applies, which
// hosts treat as a signal to hide their indicator.
type Result struct {
	Formula Formula
	Name    string
	Value   float64
	OK      bool
}

// NoScore returns the result reported for documents without words.
func NoScore(f Formula) Result {
	return Result{Formula: f, Name: f.DisplayName()}
}

// FormatValue renders the score with the formula's precision, dropping
// a trailing ".0".
func (r Result) FormatValue() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// String renders the status text, e.g. "Flesch Reading Ease score: 72".
func (r Result) String() string {
	if !r.OK {
		return ""
	}
	return fmt.Sprintf("%s score: %s", r.Name, r.FormatValue())
}

// Score applies formula f to m. Documents without words get NoScore.
// Sentences below 1 are treated as 1.
func Score(f Formula, m Metrics) Result {
	if f < 0 || f >= formulaCount {
		f = AutomatedReadability
	}
	if m.Words <= 0 {
		return NoScore(f)
	}
	if m.Sentences < 1 {
		m.Sentences = 1
	}

	spec := formulas[f]
	v := round(spec.compute(m), spec.precision)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NoScore(f)
	}
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}
	return Result{
		Formula: f,
		Name:    spec.display,
		Value:   v,
		OK:      true,
	}
}
