package output

import (
	"bytes"
	"testing"

	"github.com/jemcclin/readabilitycheck/internal/lint"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

func sampleReports() []lint.Report {
	return []lint.Report{
		{
			File:     "README.md",
			Kind:     "markdown",
			Result:   readability.Result{Formula: readability.Flesch, Name: "Flesch Reading Ease", Value: 72, OK: true},
			Metrics:  readability.Metrics{Words: 120, Sentences: 8},
			Severity: lint.OK,
		},
		{
			File:     "docs/guide.md",
			Kind:     "markdown",
			Result:   readability.Result{Formula: readability.DaleChall, Name: "Dale-Chall Readability", Value: 10.4, OK: true},
			Severity: lint.Error,
			Message:  "above max 9.9",
		},
		{
			File:     "empty.md",
			Kind:     "markdown",
			Result:   readability.NoScore(readability.SMOG),
			Severity: lint.OK,
		},
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, sampleReports()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "README.md: Flesch Reading Ease score: 72\n" +
		"docs/guide.md: Dale-Chall Readability score: 10.4 (above max 9.9)\n" +
		"empty.md: no score\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_NoFile(t *testing.T) {
	var buf bytes.Buffer
	reports := []lint.Report{{
		Result: readability.Result{Name: "SMOG Formula", Value: 3, OK: true},
	}}
	if err := (&TextFormatter{Color: true}).Format(&buf, reports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "SMOG Formula score: 3\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestTextFormatter_WithColor(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{Color: true}).Format(&buf, sampleReports()[1:2]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\033[36mdocs/guide.md:\033[0m Dale-Chall Readability score: 10.4 \033[31m(above max 9.9)\033[0m\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNew(t *testing.T) {
	if _, ok := New("json", false).(*JSONFormatter); !ok {
		t.Error("json format should give a JSONFormatter")
	}
	if tf, ok := New("text", true).(*TextFormatter); !ok || !tf.Color {
		t.Error("text format should give a colored TextFormatter")
	}
	if _, ok := New("yaml", false).(*TextFormatter); !ok {
		t.Error("unknown formats fall back to text")
	}
}

func TestTextFormatter_ParagraphLine(t *testing.T) {
	var buf bytes.Buffer
	reports := []lint.Report{{
		File:     "a.md",
		Line:     12,
		Result:   readability.Result{Name: "Automated Readability", Value: 15, OK: true},
		Severity: lint.Error,
		Message:  "above max 12",
	}}
	if err := (&TextFormatter{}).Format(&buf, reports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "a.md:12: Automated Readability score: 15 (above max 12)\n" {
		t.Errorf("got %q", buf.String())
	}
}
