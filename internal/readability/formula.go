package readability

import (
	"math"
	"strings"

	"github.com/jemcclin/readabilitycheck/internal/vocab"
)

// Formula selects one of the supported readability formulas.
type Formula int

// Supported formulas. AutomatedReadability is the zero value and the
// fallback for unknown selectors.
const (
	AutomatedReadability Formula = iota
	Flesch
	FleschKincaid
	ColemanLiau
	DaleChall
	SMOG
	Spache

	formulaCount
)

type formulaSpec struct {
	key         string
	aliases     []string
	display     string
	description string
	// vocabulary is the familiar-word list the formula reads difficult
	// words from, or "" when it does not use them.
	vocabulary vocab.Name
	// precision is the number of decimal places kept when rounding.
	precision int
	// higherIsEasier is true for scales where a larger score means
	// easier text.
	higherIsEasier bool
	compute        func(m Metrics) float64
}

var formulas = [formulaCount]formulaSpec{
	AutomatedReadability: {
		key:         "automated-readability",
		aliases:     []string{"ari", "default"},
		display:     "Automated Readability",
		description: "US grade level from characters per word and words per sentence.",
		compute: func(m Metrics) float64 {
			return 4.71*ratio(m.Characters, m.Words) +
				0.5*ratio(m.Words, m.Sentences) -
				21.43
		},
	},
	Flesch: {
		key:            "flesch",
		aliases:        []string{"flesch-reading-ease"},
		display:        "Flesch Reading Ease",
		description:    "0-100 ease score from words per sentence and syllables per word; higher is easier.",
		higherIsEasier: true,
		compute: func(m Metrics) float64 {
			return 206.835 -
				1.015*ratio(m.Words, m.Sentences) -
				84.6*ratio(m.Syllables, m.Words)
		},
	},
	FleschKincaid: {
		key:         "flesch-kincaid",
		display:     "Flesch-Kincaid Grade Level",
		description: "US grade level from words per sentence and syllables per word.",
		compute: func(m Metrics) float64 {
			return 0.39*ratio(m.Words, m.Sentences) +
				11.8*ratio(m.Syllables, m.Words) -
				15.59
		},
	},
	ColemanLiau: {
		key:         "coleman-liau",
		display:     "Coleman-Liau Index",
		description: "US grade level from characters and sentences per 100 words.",
		compute: func(m Metrics) float64 {
			return 0.0588*(ratio(m.Characters, m.Words)*100) -
				0.296*(ratio(m.Sentences, m.Words)*100) -
				15.8
		},
	},
	DaleChall: {
		key:         "dale-chall",
		display:     "Dale-Chall Readability",
		description: "Grade score from the share of words missing from the Dale-Chall familiar list.",
		vocabulary:  vocab.DaleChall,
		precision:   1,
		compute: func(m Metrics) float64 {
			pct := m.DifficultWordPercent()
			score := 0.1579*pct + 0.0496*ratio(m.Words, m.Sentences)
			if pct > 5 {
				score += 3.6365
			}
			return score
		},
	},
	SMOG: {
		key:         "smog",
		display:     "SMOG Formula",
		description: "Grade level from words of three or more syllables per 30 sentences.",
		compute: func(m Metrics) float64 {
			return 3.1291 + 1.0430*math.Sqrt(float64(m.Polysyllables)*(30/float64(m.Sentences)))
		},
	},
	Spache: {
		key:         "spache",
		display:     "Spache Readability",
		description: "Primary-grade level from sentence length and words missing from the Spache list.",
		vocabulary:  vocab.Spache,
		compute: func(m Metrics) float64 {
			return 0.659 +
				0.121*ratio(m.Words, m.Sentences) +
				0.082*m.DifficultWordPercent()
		},
	},
}

// Formulas returns every supported formula in declaration order.
func Formulas() []Formula {
	out := make([]Formula, 0, formulaCount)
	for f := Formula(0); f < formulaCount; f++ {
		out = append(out, f)
	}
	return out
}

// LookupFormula resolves a selector such as "flesch" or "smog".
func LookupFormula(raw string) (Formula, bool) {
	q := strings.ToLower(strings.TrimSpace(raw))
	if q == "" {
		return AutomatedReadability, false
	}
	for f := Formula(0); f < formulaCount; f++ {
		spec := formulas[f]
		if q == spec.key || strings.EqualFold(q, spec.display) {
			return f, true
		}
		for _, a := range spec.aliases {
			if q == a {
				return f, true
			}
		}
	}
	return AutomatedReadability, false
}

// ParseFormula resolves a selector, falling back to
// AutomatedReadability for empty or unknown values.
func ParseFormula(raw string) Formula {
	f, _ := LookupFormula(raw)
	return f
}

func (f Formula) spec() formulaSpec {
	if f < 0 || f >= formulaCount {
		return formulas[AutomatedReadability]
	}
	return formulas[f]
}

// String returns the selector used in configuration.
func (f Formula) String() string { return f.spec().key }

// DisplayName returns the human-readable formula name.
func (f Formula) DisplayName() string { return f.spec().display }

// Description returns a one-line summary of the formula.
func (f Formula) Description() string { return f.spec().description }

// Vocabulary returns the familiar-word list the formula needs, or ""
// when it does not count difficult words.
func (f Formula) Vocabulary() vocab.Name { return f.spec().vocabulary }

// Precision returns the number of decimal places scores are rounded to.
func (f Formula) Precision() int { return f.spec().precision }

// HigherIsEasier reports whether larger scores mean easier text.
func (f Formula) HigherIsEasier() bool { return f.spec().higherIsEasier }

func ratio(num, den int) float64 {
	return float64(num) / float64(den)
}

// round rounds v to precision decimals. Halves round toward positive
// infinity, so -4.5 becomes -4 and 4.5 becomes 5.
func round(v float64, precision int) float64 {
	if precision <= 0 {
		return math.Floor(v + 0.5)
	}
	scale := math.Pow10(precision)
	return math.Floor(v*scale+0.5) / scale
}
