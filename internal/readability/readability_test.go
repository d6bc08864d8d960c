package readability_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
	"github.com/jemcclin/readabilitycheck/internal/syllable"
	"github.com/jemcclin/readabilitycheck/internal/vocab"
)

// stubVocab treats only the listed words as familiar, for every list.
type stubVocab map[string]bool

func (s stubVocab) Contains(word string, _ vocab.Name) bool { return s[word] }

func newEngine(opts ...readability.Option) *readability.Engine {
	base := []readability.Option{readability.WithVocabularies(stubVocab{"the": true, "cat": true})}
	return readability.New(append(base, opts...)...)
}

func TestEvaluate_SimpleSentence(t *testing.T) {
	e := newEngine()
	if got := e.Normalize("The cat sat."); got != "The cat sat." {
		t.Fatalf("Normalize = %q", got)
	}

	m := e.ComputeMetrics("The cat sat.", "")
	if m.Words != 3 || m.Sentences != 1 {
		t.Fatalf("metrics = %+v, want 3 words 1 sentence", m)
	}

	r := e.Evaluate("The cat sat.", mdtext.KindMarkdown, readability.AutomatedReadability)
	if !r.OK {
		t.Fatal("expected a score")
	}
	// 4.71*10/3 + 0.5*3 - 21.43 = -4.23
	if r.Value != -4 {
		t.Errorf("ARI = %v, want -4", r.Value)
	}
	if r.Name != "Automated Readability" {
		t.Errorf("Name = %q", r.Name)
	}
}

func TestEvaluate_EmptyDocument(t *testing.T) {
	e := newEngine()
	if got := e.Normalize(""); got != "" {
		t.Fatalf("Normalize(\"\") = %q", got)
	}
	for _, f := range readability.Formulas() {
		r := e.Evaluate("", mdtext.KindMarkdown, f)
		if r.OK {
			t.Errorf("%s: expected no score, got %v", f, r.Value)
		}
		if r.String() != "" {
			t.Errorf("%s: String() = %q, want empty", f, r.String())
		}
	}
}

func TestEvaluate_MarkupOnlyDocument(t *testing.T) {
	e := newEngine()
	r := e.Evaluate("<div>\n</div>\n\n---\n", mdtext.KindMarkdown, readability.Flesch)
	if r.OK {
		t.Errorf("expected no score for a document without words, got %v", r.Value)
	}
}

func TestComputeMetrics_NoTerminalPunctuation(t *testing.T) {
	e := newEngine()
	m := e.ComputeMetrics("apples oranges bananas", "")
	if m.Sentences != 1 {
		t.Errorf("Sentences = %d, want 1", m.Sentences)
	}
	if m.Words != 3 {
		t.Errorf("Words = %d, want 3", m.Words)
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	e := newEngine()
	if m := e.ComputeMetrics("", vocab.DaleChall); m != (readability.Metrics{}) {
		t.Errorf("metrics = %+v, want zero", m)
	}
}

func TestComputeMetrics_Syllables(t *testing.T) {
	e := newEngine()
	m := e.ComputeMetrics("Readability is wonderful.", "")
	if m.Syllables != 9 {
		t.Errorf("Syllables = %d, want 9", m.Syllables)
	}
	if m.Polysyllables != 2 {
		t.Errorf("Polysyllables = %d, want 2", m.Polysyllables)
	}
	if m.Characters != 23 {
		t.Errorf("Characters = %d, want 23", m.Characters)
	}
}

func TestComputeMetrics_DifficultWords(t *testing.T) {
	e := newEngine()
	tests := []struct {
		name  string
		vocab vocab.Name
		want  int
	}{
		{"dale-chall", vocab.DaleChall, 1},
		{"spache", vocab.Spache, 1},
		{"none", "", 0},
		{"unknown list", vocab.Name("klingon"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := e.ComputeMetrics("The cat sat.", tt.vocab)
			if m.DifficultWords != tt.want {
				t.Errorf("DifficultWords = %d, want %d", m.DifficultWords, tt.want)
			}
		})
	}
}

func TestComputeMetrics_ContractionIsOneToken(t *testing.T) {
	e := newEngine()
	m := e.ComputeMetrics("The cat don't sit.", vocab.DaleChall)
	// "don't" and "sit" are unfamiliar to the stub list.
	if m.DifficultWords != 2 {
		t.Errorf("DifficultWords = %d, want 2", m.DifficultWords)
	}
}

func TestComputeMetrics_InjectedEstimator(t *testing.T) {
	calls := 0
	est := syllable.EstimatorFunc(func(text string) int {
		calls++
		return 3
	})
	e := newEngine(readability.WithEstimator(est))
	m := e.ComputeMetrics("one two", "")
	if m.Syllables != 3 {
		t.Errorf("Syllables = %d, want 3", m.Syllables)
	}
	if m.Polysyllables != 2 {
		t.Errorf("Polysyllables = %d, want 2", m.Polysyllables)
	}
	if calls != 3 {
		t.Errorf("estimator called %d times, want 3", calls)
	}
}

func TestScore_SMOGWithoutPolysyllables(t *testing.T) {
	r := readability.Score(readability.SMOG, readability.Metrics{Words: 3, Sentences: 1})
	if !r.OK || r.Value != 3 {
		t.Errorf("SMOG = %+v, want 3", r)
	}
}

func TestScore_SimpleSentenceAllFormulas(t *testing.T) {
	m := readability.Metrics{Words: 3, Sentences: 1, Characters: 10, Syllables: 3}
	tests := []struct {
		f    readability.Formula
		want float64
	}{
		{readability.AutomatedReadability, -4},
		{readability.Flesch, 119},
		{readability.FleschKincaid, -3},
		{readability.ColemanLiau, -6},
		{readability.SMOG, 3},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			r := readability.Score(tt.f, m)
			if !r.OK || r.Value != tt.want {
				t.Errorf("got %+v, want %v", r, tt.want)
			}
		})
	}
}

func TestScore_DaleChallThreshold(t *testing.T) {
	tests := []struct {
		name      string
		difficult int
		want      float64
	}{
		// 0.1579*5 + 0.0496*10
		{"at five percent", 5, 1.3},
		// 0.1579*6 + 0.0496*10 + 3.6365
		{"above five percent", 6, 5.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := readability.Metrics{Words: 100, Sentences: 10, DifficultWords: tt.difficult}
			r := readability.Score(readability.DaleChall, m)
			if !r.OK || r.Value != tt.want {
				t.Errorf("got %+v, want %v", r, tt.want)
			}
		})
	}
}

func TestScore_Spache(t *testing.T) {
	// 0.659 + 0.121*5 + 0.082*10 = 2.084
	r := readability.Score(readability.Spache, readability.Metrics{Words: 10, Sentences: 2, DifficultWords: 1})
	if !r.OK || r.Value != 2 {
		t.Errorf("got %+v, want 2", r)
	}
}

func TestScore_ZeroSentencesFloored(t *testing.T) {
	a := readability.Score(readability.Flesch, readability.Metrics{Words: 3, Characters: 10, Syllables: 3})
	b := readability.Score(readability.Flesch, readability.Metrics{Words: 3, Sentences: 1, Characters: 10, Syllables: 3})
	if a != b {
		t.Errorf("zero sentences = %+v, one sentence = %+v", a, b)
	}
}

func TestScore_AllFormulasFinite(t *testing.T) {
	m := readability.Metrics{
		Words: 100, Sentences: 5, Characters: 450,
		Syllables: 140, DifficultWords: 10, Polysyllables: 8,
	}
	for _, f := range readability.Formulas() {
		r := readability.Score(f, m)
		if !r.OK {
			t.Errorf("%s: no score", f)
			continue
		}
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			t.Errorf("%s: non-finite score %v", f, r.Value)
		}
		if r.Formula != f {
			t.Errorf("%s: result formula = %s", f, r.Formula)
		}
	}
}

func TestScore_OutOfRangeFormula(t *testing.T) {
	m := readability.Metrics{Words: 3, Sentences: 1, Characters: 10, Syllables: 3}
	got := readability.Score(readability.Formula(99), m)
	want := readability.Score(readability.AutomatedReadability, m)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFormulas_Table(t *testing.T) {
	fs := readability.Formulas()
	if len(fs) != 7 {
		t.Fatalf("len(Formulas()) = %d, want 7", len(fs))
	}
	seen := make(map[string]bool)
	for _, f := range fs {
		if f.String() == "" || f.DisplayName() == "" || f.Description() == "" {
			t.Errorf("formula %d has an empty name or description", int(f))
		}
		if seen[f.String()] {
			t.Errorf("duplicate key %q", f.String())
		}
		seen[f.String()] = true
		got, ok := readability.LookupFormula(f.String())
		if !ok || got != f {
			t.Errorf("LookupFormula(%q) = %v, %v", f.String(), got, ok)
		}
	}
}

func TestFormula_Vocabulary(t *testing.T) {
	for _, f := range readability.Formulas() {
		want := vocab.Name("")
		switch f {
		case readability.DaleChall:
			want = vocab.DaleChall
		case readability.Spache:
			want = vocab.Spache
		}
		if got := f.Vocabulary(); got != want {
			t.Errorf("%s: Vocabulary() = %q, want %q", f, got, want)
		}
	}
}

func TestParseFormula(t *testing.T) {
	tests := []struct {
		in   string
		want readability.Formula
	}{
		{"", readability.AutomatedReadability},
		{"unknown-value", readability.AutomatedReadability},
		{"ARI", readability.AutomatedReadability},
		{"flesch", readability.Flesch},
		{"Flesch Reading Ease", readability.Flesch},
		{" flesch-kincaid ", readability.FleschKincaid},
		{"coleman-liau", readability.ColemanLiau},
		{"dale-chall", readability.DaleChall},
		{"SMOG", readability.SMOG},
		{"spache", readability.Spache},
	}
	for _, tt := range tests {
		if got := readability.ParseFormula(tt.in); got != tt.want {
			t.Errorf("ParseFormula(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, ok := readability.LookupFormula("unknown-value"); ok {
		t.Error("LookupFormula(unknown-value) reported ok")
	}
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		r    readability.Result
		want string
	}{
		{readability.Result{Name: "Flesch Reading Ease", Value: 72, OK: true}, "Flesch Reading Ease score: 72"},
		{readability.Result{Name: "Dale-Chall Readability", Value: 5.1, OK: true}, "Dale-Chall Readability score: 5.1"},
		{readability.NoScore(readability.SMOG), ""},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEvaluate_Kinds(t *testing.T) {
	e := newEngine()
	if r := e.Evaluate("<p>The cat sat.</p>", mdtext.KindHTML, readability.Flesch); r.OK {
		t.Error("html scored by default")
	}
	if r := e.Evaluate("The cat sat.", mdtext.KindOther, readability.Flesch); r.OK {
		t.Error("other kind scored")
	}
	if r := e.Evaluate("The cat sat.", mdtext.KindPlainText, readability.Flesch); !r.OK {
		t.Error("plain text not scored")
	}

	html := newEngine(readability.WithKinds(mdtext.KindHTML))
	r := html.Evaluate("<html><head><title>x</title></head><body><p>The cat sat.</p></body></html>", mdtext.KindHTML, readability.Flesch)
	if !r.OK || r.Value != 119 {
		t.Errorf("html = %+v, want 119", r)
	}
	if html.Scores(mdtext.KindMarkdown) {
		t.Error("markdown still scored after WithKinds(html)")
	}
}

func TestEvaluate_FrontMatter(t *testing.T) {
	src := "---\ntitle: A very long and complicated title\n---\nThe cat sat.\n"

	r := newEngine().Evaluate(src, mdtext.KindMarkdown, readability.AutomatedReadability)
	if !r.OK || r.Value != -4 {
		t.Errorf("stripped = %+v, want -4", r)
	}

	kept := newEngine(readability.WithFrontMatter(false))
	if got := kept.NormalizeKind(src, mdtext.KindMarkdown); !strings.Contains(got, "title") {
		t.Errorf("front matter removed although disabled: %q", got)
	}
}

func TestEvaluate_CustomStripper(t *testing.T) {
	upper := stripperFunc(func(b []byte) string { return strings.ToUpper(string(b)) })
	e := newEngine(readability.WithStripper(mdtext.KindPlainText, upper))
	if got := e.NormalizeKind("the  cat", mdtext.KindPlainText); got != "THE CAT" {
		t.Errorf("NormalizeKind = %q", got)
	}
}

type stripperFunc func([]byte) string

func (f stripperFunc) Strip(b []byte) string { return f(b) }

func TestEvaluate_LogsMetrics(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(readability.WithLogger(log.New(&buf, true)))
	e.Evaluate("The cat sat.", mdtext.KindMarkdown, readability.Flesch)
	out := buf.String()
	if !strings.Contains(out, `"words":3`) || !strings.Contains(out, `"score":119`) {
		t.Errorf("log output missing metrics: %s", out)
	}
}

func TestAnalyze_ReturnsMetrics(t *testing.T) {
	e := newEngine()
	r, m := e.Analyze("The cat sat.", mdtext.KindMarkdown, readability.DaleChall)
	if !r.OK {
		t.Fatal("expected a score")
	}
	if m.Words != 3 || m.DifficultWords != 1 {
		t.Errorf("metrics = %+v", m)
	}

	r, m = e.Analyze("The cat sat.", mdtext.KindOther, readability.DaleChall)
	if r.OK || m != (readability.Metrics{}) {
		t.Errorf("unscored kind gave %+v, %+v", r, m)
	}
}
