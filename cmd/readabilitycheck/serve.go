package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jemcclin/readabilitycheck/internal/readability"
	"github.com/jemcclin/readabilitycheck/internal/server"
)

// runServe implements the "serve" subcommand: the MCP server on stdio.
// Logs go to stderr so they stay out of the protocol stream.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		configPath string
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log tool calls on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readabilitycheck serve [flags]\n\n"+
			"Run an MCP server on stdin/stdout exposing the readability_score\n"+
			"and readability_formulas tools.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readabilitycheck: serve takes no arguments\n")
		return 2
	}

	logger := newLogger(verbose)
	cfg, cfgPath, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	e := readability.New(append(cfg.EngineOptions(), readability.WithLogger(logger))...)
	s := server.New(version(), e, cfg, logger)
	if err := server.Serve(s); err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}
	return 0
}
