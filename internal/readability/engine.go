// Package readability computes text statistics and readability scores.
//
// The Engine is stateless after construction and safe for concurrent
// use. Its collaborators (markup strippers, syllable estimator and
// familiar-word lists) are injected through Options so tests can use
// fixed stubs.
package readability

import (
	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/syllable"
	"github.com/jemcclin/readabilitycheck/internal/vocab"
)

// Vocabulary reports whether word is on the familiar-word list called
// name.
type Vocabulary interface {
	Contains(word string, name vocab.Name) bool
}

// Engine derives metrics from document text and scores them.
type Engine struct {
	estimator   syllable.Estimator
	vocabulary  Vocabulary
	strippers   map[mdtext.Kind]mdtext.Stripper
	kinds       map[mdtext.Kind]bool
	frontMatter bool
	log         *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEstimator sets the syllable estimator.
func WithEstimator(est syllable.Estimator) Option {
	return func(e *Engine) { e.estimator = est }
}

// WithVocabularies sets the familiar-word lookup.
func WithVocabularies(v Vocabulary) Option {
	return func(e *Engine) { e.vocabulary = v }
}

// WithStripper overrides the markup stripper used for kind.
func WithStripper(kind mdtext.Kind, s mdtext.Stripper) Option {
	return func(e *Engine) { e.strippers[kind] = s }
}

// WithKinds sets the document kinds that are scored. Documents of any
// other kind evaluate to NoScore. KindOther is never scored.
func WithKinds(kinds ...mdtext.Kind) Option {
	return func(e *Engine) {
		e.kinds = make(map[mdtext.Kind]bool, len(kinds))
		for _, k := range kinds {
			if k != mdtext.KindOther {
				e.kinds[k] = true
			}
		}
	}
}

// WithFrontMatter controls whether YAML front matter is removed from
// Markdown before scoring. Enabled by default.
func WithFrontMatter(strip bool) Option {
	return func(e *Engine) { e.frontMatter = strip }
}

// WithLogger sets the logger used for per-document debug events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// DefaultKinds are the document kinds scored when WithKinds is not used.
func DefaultKinds() []mdtext.Kind {
	return []mdtext.Kind{mdtext.KindMarkdown, mdtext.KindPlainText}
}

// New returns an Engine using the heuristic syllable estimator and the
// built-in familiar-word lists unless overridden by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		strippers:   make(map[mdtext.Kind]mdtext.Stripper),
		frontMatter: true,
	}
	WithKinds(DefaultKinds()...)(e)
	for _, opt := range opts {
		opt(e)
	}
	if e.estimator == nil {
		e.estimator = syllable.Heuristic{}
	}
	if e.vocabulary == nil {
		e.vocabulary = vocab.Default()
	}
	if e.log == nil {
		e.log = log.Nop()
	}
	return e
}

// Scores reports whether documents of kind are scored.
func (e *Engine) Scores(kind mdtext.Kind) bool {
	return e.kinds[kind]
}

// Normalize strips Markdown from raw and collapses its whitespace.
func (e *Engine) Normalize(raw string) string {
	return e.NormalizeKind(raw, mdtext.KindMarkdown)
}

// NormalizeKind strips the markup of kind from raw and collapses its
// whitespace.
func (e *Engine) NormalizeKind(raw string, kind mdtext.Kind) string {
	if kind == mdtext.KindMarkdown && e.frontMatter {
		_, body := mdtext.StripFrontMatter([]byte(raw))
		raw = string(body)
	}
	return mdtext.NormalizeWith(e.stripperFor(kind), raw)
}

func (e *Engine) stripperFor(kind mdtext.Kind) mdtext.Stripper {
	if s, ok := e.strippers[kind]; ok {
		return s
	}
	return mdtext.StripperFor(kind)
}

// ComputeMetrics derives the metric bundle from normalized text.
// Difficult words are counted against the list called vocabulary; an
// empty or unknown name yields zero difficult words. Text without
// words yields the zero Metrics.
func (e *Engine) ComputeMetrics(text string, vocabulary vocab.Name) Metrics {
	words := mdtext.CountWords(text)
	if words == 0 {
		return Metrics{}
	}

	m := Metrics{
		Words:      words,
		Sentences:  mdtext.CountSentences(text),
		Characters: mdtext.CountCharacters(text),
		Syllables:  e.estimator.Estimate(text),
	}
	if m.Sentences < 1 {
		m.Sentences = 1
	}

	_, known := vocab.ParseName(string(vocabulary))
	for _, tok := range mdtext.Tokens(text) {
		if e.estimator.Estimate(tok) >= 3 {
			m.Polysyllables++
		}
		if known && !e.vocabulary.Contains(tok, vocabulary) {
			m.DifficultWords++
		}
	}
	return m
}

// Evaluate normalizes raw according to kind and scores it with f.
// Unscored kinds and documents without words return NoScore.
func (e *Engine) Evaluate(raw string, kind mdtext.Kind, f Formula) Result {
	r, _ := e.Analyze(raw, kind, f)
	return r
}

// Analyze is Evaluate that also returns the metrics the score was
// computed from. Unscored kinds yield the zero Metrics.
func (e *Engine) Analyze(raw string, kind mdtext.Kind, f Formula) (Result, Metrics) {
	if !e.Scores(kind) {
		e.log.Debug().Str("kind", string(kind)).Msg("kind not scored")
		return NoScore(f), Metrics{}
	}

	text := e.NormalizeKind(raw, kind)
	m := e.ComputeMetrics(text, f.Vocabulary())
	e.log.Debug().
		Str("formula", f.String()).
		Int("words", m.Words).
		Int("sentences", m.Sentences).
		Int("characters", m.Characters).
		Int("syllables", m.Syllables).
		Int("difficult_words", m.DifficultWords).
		Int("polysyllables", m.Polysyllables).
		Msg("metrics")

	r := Score(f, m)
	if r.OK {
		e.log.Debug().Str("formula", f.String()).Float64("score", r.Value).Msg("score")
	}
	return r, m
}
