package server

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func newScoreTool(cfg *config.Config) *ScoreTool {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return NewScoreTool(readability.New(), cfg, log.Nop())
}

func TestScoreTool_Definition(t *testing.T) {
	def := newScoreTool(nil).Definition()
	if def.Name != "readability_score" {
		t.Errorf("tool name = %q, want %q", def.Name, "readability_score")
	}
	for _, p := range []string{"text", "formula", "kind", "path"} {
		if _, ok := def.InputSchema.Properties[p]; !ok {
			t.Errorf("missing %q parameter", p)
		}
	}
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "text" {
		t.Errorf("expected only text required, got %v", def.InputSchema.Required)
	}
}

func TestScoreTool_Handle(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"default formula", map[string]interface{}{"text": "The cat sat."}, "Automated Readability score: -4"},
		{"formula alias", map[string]interface{}{"text": "The cat sat.", "formula": "flesch-reading-ease"}, "Flesch Reading Ease score: 119"},
		{"plain kind", map[string]interface{}{"text": "The cat sat.", "kind": "plaintext", "formula": "smog"}, "SMOG Formula score: 3"},
		{"empty text", map[string]interface{}{"text": ""}, NoScoreText},
		{"markup only", map[string]interface{}{"text": "# \n\n---\n"}, NoScoreText},
		{"unscored kind", map[string]interface{}{"text": "The cat sat.", "kind": "go"}, NoScoreText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newScoreTool(nil).Handle(context.Background(), makeReq(tt.args))
			if err != nil {
				t.Fatal(err)
			}
			if res.IsError {
				t.Fatalf("unexpected error result: %s", resultText(res))
			}
			if got := resultText(res); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreTool_PathOverride(t *testing.T) {
	cfg := config.Merge(config.Defaults(), &config.Config{
		Overrides: []config.Override{{Files: []string{"docs/*.md"}, Formula: "flesch"}},
	})
	res, err := newScoreTool(cfg).Handle(context.Background(), makeReq(map[string]interface{}{
		"text": "The cat sat.",
		"path": "docs/intro.md",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := resultText(res); got != "Flesch Reading Ease score: 119" {
		t.Errorf("got %q", got)
	}
}

func TestScoreTool_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing text", map[string]interface{}{}, "text"},
		{"unknown formula", map[string]interface{}{"text": "x", "formula": "gunning-fog"}, "unknown formula"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newScoreTool(nil).Handle(context.Background(), makeReq(tt.args))
			if err != nil {
				t.Fatal(err)
			}
			if !res.IsError {
				t.Fatal("expected an error result")
			}
			if !strings.Contains(resultText(res), tt.want) {
				t.Errorf("error %q should mention %q", resultText(res), tt.want)
			}
		})
	}
}

func TestFormulasTool(t *testing.T) {
	tool := NewFormulasTool()
	if tool.Definition().Name != "readability_formulas" {
		t.Errorf("unexpected name %q", tool.Definition().Name)
	}
	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatal(err)
	}
	text := resultText(res)
	for _, f := range readability.Formulas() {
		if !strings.Contains(text, "`"+f.String()+"`") || !strings.Contains(text, f.DisplayName()) {
			t.Errorf("listing missing %s: %s", f, text)
		}
	}
}

func TestNew(t *testing.T) {
	s := New("test", readability.New(), nil, log.Nop())
	if s == nil {
		t.Fatal("expected a server")
	}
}
