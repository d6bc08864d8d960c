package metrics

import (
	"bytes"

	"github.com/jemcclin/readabilitycheck/internal/lint"
	"github.com/jemcclin/readabilitycheck/internal/readability"
	"github.com/jemcclin/readabilitycheck/internal/vocab"
)

// Document is the shared metric input for a single file. Normalized
// text and metric bundles are computed lazily and cached.
type Document struct {
	*lint.Document

	engine *readability.Engine

	text      string
	textReady bool

	bundles map[vocab.Name]readability.Metrics
}

// NewDocument wraps doc for metric computation with e.
func NewDocument(doc *lint.Document, e *readability.Engine) *Document {
	return &Document{
		Document: doc,
		engine:   e,
		bundles:  make(map[vocab.Name]readability.Metrics),
	}
}

// ByteCount returns raw file byte count.
func (d *Document) ByteCount() int {
	return len(d.Source)
}

// LineCount returns content line count.
func (d *Document) LineCount() int {
	if len(d.Source) == 0 {
		return 0
	}
	lines := bytes.Count(d.Source, []byte("\n"))
	if d.Source[len(d.Source)-1] != '\n' {
		lines++
	}
	return lines
}

// Scored reports whether the engine scores the document's kind.
func (d *Document) Scored() bool {
	return d.engine.Scores(d.Kind)
}

// Normalized returns the normalized text, or "" when the kind is not
// scored.
func (d *Document) Normalized() string {
	if !d.textReady {
		if d.Scored() {
			d.text = d.engine.NormalizeKind(string(d.Source), d.Kind)
		}
		d.textReady = true
	}
	return d.text
}

// Metrics returns the metric bundle with difficult words counted
// against the list called v.
func (d *Document) Metrics(v vocab.Name) readability.Metrics {
	if m, ok := d.bundles[v]; ok {
		return m
	}
	m := d.engine.ComputeMetrics(d.Normalized(), v)
	d.bundles[v] = m
	return m
}

// Score scores the document with f.
func (d *Document) Score(f readability.Formula) readability.Result {
	return readability.Score(f, d.Metrics(f.Vocabulary()))
}
