// Package server exposes the readability engine as MCP tools over
// stdio.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Name is the server name reported to clients.
const Name = "readabilitycheck"

// New creates an MCP server with the readability tools registered.
// A nil cfg means config.Defaults().
func New(version string, e *readability.Engine, cfg *config.Config, logger *log.Logger) *server.MCPServer {
	if cfg == nil {
		cfg = config.Defaults()
	}

	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	scoreTool := NewScoreTool(e, cfg, logger)
	s.AddTool(scoreTool.Definition(), scoreTool.Handle)

	formulasTool := NewFormulasTool()
	s.AddTool(formulasTool.Definition(), formulasTool.Handle)

	return s
}

// Serve runs s on stdin and stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = "Scores English prose with classic readability formulas. " +
	"Call readability_formulas to list formula selectors, then readability_score " +
	"with the document text to get a score such as \"Flesch Reading Ease score: 72\"."
