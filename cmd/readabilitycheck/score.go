package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jemcclin/readabilitycheck/internal/config"
	"github.com/jemcclin/readabilitycheck/internal/discovery"
	"github.com/jemcclin/readabilitycheck/internal/engine"
	"github.com/jemcclin/readabilitycheck/internal/lint"
	vlog "github.com/jemcclin/readabilitycheck/internal/log"
	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/output"
	"github.com/jemcclin/readabilitycheck/internal/paragraph"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

type scoreOptions struct {
	configPath  string
	formula     string
	format      string
	kind        string
	max         float64
	min         float64
	noColor     bool
	quiet       bool
	verbose     bool
	noGitignore bool
	paragraphs  bool
	minWords    int

	hasMax bool
	hasMin bool
}

// runScore implements the "score" subcommand.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var opts scoreOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&opts.formula, "formula", "", "Formula to score with (default: configured formula)")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.StringVar(&opts.kind, "kind", "markdown", "Document kind for stdin: markdown, plaintext, html")
	fs.Float64Var(&opts.max, "max", 0, "Fail when a score is above this value")
	fs.Float64Var(&opts.min, "min", 0, "Fail when a score is below this value")
	fs.BoolVar(&opts.noColor, "no-color", !vlog.IsTerminal(os.Stdout), "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Only print documents that fail a threshold")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config, files, and metrics on stderr")
	fs.BoolVar(&opts.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.BoolVarP(&opts.paragraphs, "paragraphs", "p", false, "Also score each paragraph")
	fs.IntVar(&opts.minWords, "min-words", paragraph.DefaultMinWords, "Skip paragraphs with fewer words (with --paragraphs)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readabilitycheck score [flags] [files...]\n\n"+
			"Score documents with a readability formula.\n\n"+
			"Files can be paths, directories (walked recursively), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped, otherwise scores\n"+
			"the files matched by the config's files patterns.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	opts.hasMax = fs.Changed("max")
	opts.hasMin = fs.Changed("min")

	if opts.quiet {
		opts.verbose = false
	}
	if opts.format != "text" && opts.format != "json" {
		fmt.Fprintf(os.Stderr, "readabilitycheck: unknown format %q (supported: text, json)\n", opts.format)
		return 2
	}

	logger := newLogger(opts.verbose)
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	runner, err := newRunner(cfg, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}

	files := fs.Args()
	if len(files) == 0 && isStdinPipe() {
		return scoreStdin(runner, opts)
	}
	return scoreFiles(runner, cfg, files, opts)
}

func newRunner(cfg *config.Config, opts scoreOptions, logger *vlog.Logger) (*engine.Runner, error) {
	if opts.minWords < 1 {
		return nil, fmt.Errorf("--min-words must be >= 1")
	}
	runner := &engine.Runner{
		Config:     cfg,
		Log:        logger,
		Paragraphs: opts.paragraphs,
		MinWords:   opts.minWords,
	}
	if opts.formula != "" {
		f, ok := readability.LookupFormula(opts.formula)
		if !ok {
			return nil, fmt.Errorf("unknown formula %q (see 'readabilitycheck help formula')", opts.formula)
		}
		runner.Formula = &f
	}
	if opts.hasMax {
		runner.Threshold.Max = config.Float(opts.max)
	}
	if opts.hasMin {
		runner.Threshold.Min = config.Float(opts.min)
	}
	if opts.hasMax && opts.hasMin && opts.min > opts.max {
		return nil, fmt.Errorf("--min %v is greater than --max %v", opts.min, opts.max)
	}
	return runner, nil
}

func scoreFiles(runner *engine.Runner, cfg *config.Config, fileArgs []string, opts scoreOptions) int {
	useGitignore := !opts.noGitignore

	var (
		files []string
		err   error
	)
	if len(fileArgs) == 0 {
		files, err = discovery.Discover(discovery.Options{
			Patterns:     cfg.Files,
			UseGitignore: useGitignore,
		})
	} else {
		files, err = lint.ResolveFilesWithOpts(fileArgs, lint.ResolveOpts{
			UseGitignore: &useGitignore,
			Kinds:        cfg.ScoredKinds(),
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	result := runner.Run(files)
	printErrors(result.Errors)

	if len(result.Errors) > 0 && len(result.Reports) == 0 {
		return 2
	}
	if code := writeReports(result.Reports, opts); code != 0 {
		return code
	}
	runner.Log.Printf("scored %d files", len(result.Reports))

	if result.Failed() {
		return 1
	}
	if len(result.Errors) > 0 {
		return 2
	}
	return 0
}

// scoreStdin reads a document from stdin and scores it.
func scoreStdin(runner *engine.Runner, opts scoreOptions) int {
	kind := mdtext.ParseKind(opts.kind)
	if kind == mdtext.KindOther {
		fmt.Fprintf(os.Stderr, "readabilitycheck: unknown kind %q (supported: markdown, plaintext, html)\n", opts.kind)
		return 2
	}

	doc, err := lint.ReadDocumentFrom(os.Stdin, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}

	result := runner.RunSource(doc)
	if code := writeReports(result.Reports, opts); code != 0 {
		return code
	}
	if result.Failed() {
		return 1
	}
	return 0
}

// writeReports writes reports to stdout in the selected format. With
// --quiet only failing reports are written.
func writeReports(reports []lint.Report, opts scoreOptions) int {
	if opts.quiet {
		var failed []lint.Report
		for _, r := range reports {
			if r.Failed() {
				failed = append(failed, r)
			}
		}
		reports = failed
		if len(reports) == 0 {
			return 0
		}
	}

	formatter := output.New(opts.format, !opts.noColor)
	if err := formatter.Format(os.Stdout, reports); err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: error writing output: %v\n", err)
		return 2
	}
	return 0
}
