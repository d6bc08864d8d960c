package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// NoScoreText is returned for documents that have no score.
const NoScoreText = "no score"

// ScoreTool handles the readability_score tool.
type ScoreTool struct {
	engine *readability.Engine
	cfg    *config.Config
	log    *log.Logger
}

// NewScoreTool creates a ScoreTool scoring with e. The formula falls
// back to the one cfg selects for the request's path.
func NewScoreTool(e *readability.Engine, cfg *config.Config, logger *log.Logger) *ScoreTool {
	return &ScoreTool{engine: e, cfg: cfg, log: logger}
}

// Definition returns the MCP tool definition for readability_score.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("readability_score",
		mcp.WithDescription(
			"Score a document with a readability formula. Returns the status text, "+
				"e.g. \"Flesch Reading Ease score: 72\", or \"no score\" when the document has no words.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text"),
		),
		mcp.WithString("formula",
			mcp.Description("Formula selector, e.g. flesch or dale-chall (default: configured formula)"),
		),
		mcp.WithString("kind",
			mcp.Description("Document kind: markdown (default), plaintext or html"),
		),
		mcp.WithString("path",
			mcp.Description("Optional file path used to pick configured overrides"),
		),
	)
}

// Handle processes the readability_score tool call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := req.GetArguments()["text"].(string)
	if !ok {
		return mcp.NewToolResultError("text is required"), nil
	}

	path := req.GetString("path", "")
	f := config.Effective(t.cfg, path).Formula
	if raw := req.GetString("formula", ""); raw != "" {
		g, ok := readability.LookupFormula(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown formula %q", raw)), nil
		}
		f = g
	}

	kind := mdtext.KindMarkdown
	if raw := req.GetString("kind", ""); raw != "" {
		kind = mdtext.ParseKind(raw)
	}

	res := t.engine.Evaluate(text, kind, f)
	t.log.Debug().
		Str("formula", f.String()).
		Str("kind", string(kind)).
		Bool("scored", res.OK).
		Msg("readability_score")
	if !res.OK {
		return mcp.NewToolResultText(NoScoreText), nil
	}
	return mcp.NewToolResultText(res.String()), nil
}

// FormulasTool handles the readability_formulas tool.
type FormulasTool struct{}

// NewFormulasTool creates a FormulasTool.
func NewFormulasTool() *FormulasTool {
	return &FormulasTool{}
}

// Definition returns the MCP tool definition for readability_formulas.
func (t *FormulasTool) Definition() mcp.Tool {
	return mcp.NewTool("readability_formulas",
		mcp.WithDescription("List the supported readability formulas with their selectors and display names."),
	)
}

// Handle processes the readability_formulas tool call.
func (t *FormulasTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("## Readability Formulas\n\n")
	for _, f := range readability.Formulas() {
		sb.WriteString(fmt.Sprintf("- **%s** (`%s`): %s\n", f.DisplayName(), f.String(), f.Description()))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
