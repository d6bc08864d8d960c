package engine

import (
	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/lint"
	"github.com/jemcclin/readabilitycheck/internal/paragraph"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Check evaluates doc with the formula in s and marks the report as an
// error when the score crosses s.Threshold. Documents without a score
// never fail.
func Check(e *readability.Engine, doc *lint.Document, s config.Settings) lint.Report {
	res, m := e.Analyze(doc.Text(), doc.Kind, s.Formula)
	return report(doc, 0, res, m, s.Threshold)
}

// CheckParagraphs scores each paragraph of doc with at least minWords
// words, applying the same formula and threshold as Check. Documents of
// kinds e does not score have no paragraph reports.
func CheckParagraphs(e *readability.Engine, doc *lint.Document, s config.Settings, minWords int, frontMatter bool) []lint.Report {
	if !e.Scores(doc.Kind) {
		return nil
	}

	var reports []lint.Report
	for _, p := range paragraph.Split(doc.Source, doc.Kind, frontMatter) {
		m := e.ComputeMetrics(p.Text, s.Formula.Vocabulary())
		if m.Words < minWords {
			continue
		}
		reports = append(reports, report(doc, p.Line, readability.Score(s.Formula, m), m, s.Threshold))
	}
	return reports
}

func report(doc *lint.Document, line int, res readability.Result, m readability.Metrics, t config.Threshold) lint.Report {
	rep := lint.Report{
		File:     doc.Path,
		Line:     line,
		Kind:     doc.Kind,
		Result:   res,
		Metrics:  m,
		Severity: lint.OK,
	}
	if res.OK && t.Violated(res.Value) {
		rep.Severity = lint.Error
		rep.Message = t.Describe(res.Value)
	}
	return rep
}
