package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jemcclin/readabilitycheck/internal/host"
	"github.com/jemcclin/readabilitycheck/internal/lint"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// runWatch implements the "watch" subcommand: poll files and print the
// status line each time one is opened or saved.
func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	var (
		configPath  string
		interval    time.Duration
		verbose     bool
		noGitignore bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.DurationVar(&interval, "interval", host.DefaultInterval, "Polling interval")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log events and metrics on stderr")
	fs.BoolVar(&noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readabilitycheck watch [flags] files...\n\n"+
			"Print a score line whenever a watched file is first seen or saved.\n"+
			"Stops on interrupt.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "readabilitycheck: watch needs at least one file\n")
		return 2
	}
	if interval <= 0 {
		fmt.Fprintf(os.Stderr, "readabilitycheck: --interval must be positive\n")
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

	useGitignore := !noGitignore
	files, err := lint.ResolveFilesWithOpts(fs.Args(), lint.ResolveOpts{
		UseGitignore: &useGitignore,
		Kinds:        cfg.ScoredKinds(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "readabilitycheck: no files to watch\n")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := readability.New(append(cfg.EngineOptions(), readability.WithLogger(logger))...)
	poller := &host.Poller{Paths: files, Interval: interval, Log: logger}

	// The status line keeps one indicator per path and labels each line
	// with the document it belongs to.
	ctrl := host.NewController(e, cfg, host.NewStatusLine(os.Stderr, ""), logger)
	defer func() { _ = ctrl.Close() }()
	if err := ctrl.Run(ctx, poller.Watch(ctx)); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", err)
		return 2
	}

	logger.Printf("stopped watching %d files", len(files))
	return 0
}
