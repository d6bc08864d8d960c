// Package engine drives scoring across files: for each document it
// resolves the effective settings, evaluates it and checks thresholds.
package engine

import (
	"sort"

	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/lint"
	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/paragraph"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Runner scores documents with the settings from Config.
type Runner struct {
	Config *config.Config
	Engine *readability.Engine

	// Formula, when non-nil, replaces the configured formula for every
	// document.
	Formula *readability.Formula

	// Threshold, when set, replaces the configured threshold.
	Threshold config.Threshold

	// Paragraphs adds a report for every paragraph of at least
	// MinWords words after each document report. MinWords defaults to
	// paragraph.DefaultMinWords.
	Paragraphs bool
	MinWords   int

	Log *log.Logger
}

// Result holds the output of a run.
type Result struct {
	Reports []lint.Report
	Errors  []error
}

// Failed reports whether any document crossed its threshold.
func (r *Result) Failed() bool {
	for _, rep := range r.Reports {
		if rep.Failed() {
			return true
		}
	}
	return false
}

// Run scores the files at the given paths. Reports are sorted by file.
// Unreadable files are recorded in Errors and skipped.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if config.IsIgnored(r.Config, path) {
			r.Log.Printf("ignored %s", path)
			continue
		}

		doc, err := lint.ReadDocument(path)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		res.Reports = append(res.Reports, r.checkAll(doc)...)
	}

	sort.SliceStable(res.Reports, func(i, j int) bool {
		a, b := res.Reports[i], res.Reports[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})
	return res
}

// RunSource scores a single in-memory document, such as stdin.
func (r *Runner) RunSource(doc *lint.Document) *Result {
	return &Result{Reports: r.checkAll(doc)}
}

func (r *Runner) checkAll(doc *lint.Document) []lint.Report {
	reports := []lint.Report{r.Check(doc)}
	if r.Paragraphs {
		minWords := r.MinWords
		if minWords <= 0 {
			minWords = paragraph.DefaultMinWords
		}
		reports = append(reports, CheckParagraphs(r.engine(), doc, r.settings(doc.Path), minWords, r.Config.FrontMatterEnabled())...)
	}
	return reports
}

// Check scores one document with its effective settings.
func (r *Runner) Check(doc *lint.Document) lint.Report {
	s := r.settings(doc.Path)
	rep := Check(r.engine(), doc, s)
	r.Log.Printf("%s: %s", displayPath(doc.Path), rep.Status())
	return rep
}

func (r *Runner) settings(path string) config.Settings {
	s := config.Effective(r.Config, path)
	if r.Formula != nil {
		s = config.EffectiveFor(r.Config, path, *r.Formula)
	}
	if !r.Threshold.IsZero() {
		s.Threshold = r.Threshold
	}
	return s
}

func (r *Runner) engine() *readability.Engine {
	if r.Engine == nil {
		r.Engine = readability.New(append(r.Config.EngineOptions(), readability.WithLogger(r.Log))...)
	}
	return r.Engine
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
