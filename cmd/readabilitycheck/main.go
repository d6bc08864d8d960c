package main

import (
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jemcclin/readabilitycheck/internal/config"
	vlog "github.com/jemcclin/readabilitycheck/internal/log"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: readabilitycheck <command> [flags] [files...]

Commands:
  score     Score documents with a readability formula
  metrics   List or rank document metrics
  watch     Re-score files whenever they are saved
  serve     Run the MCP tool server on stdio
  help      Show help for formulas
  init      Generate a default .readabilitycheck.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'readabilitycheck <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "score":
		return runScore(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "watch":
		return runWatch(os.Args[2:])
	case "serve":
		return runServe(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		fmt.Printf("readabilitycheck %s\n", version())
		return 0
	default:
		fmt.Fprintf(os.Stderr, "readabilitycheck: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// runInit implements the "init" subcommand: generate .readabilitycheck.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readabilitycheck init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readabilitycheck: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %s already exists\n", config.FileName)
		return 2
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "readabilitycheck: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "readabilitycheck: created %s\n", config.FileName)
	return 0
}

// printErrors writes runtime errors to stderr.
func printErrors(errs []error) {
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "readabilitycheck: %v\n", e)
	}
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func newLogger(verbose bool) *vlog.Logger {
	return vlog.NewConsole(os.Stderr, verbose)
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged and validated config, the path that was loaded (empty if
// defaults only), and any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	cfg, path, err := readConfig(configPath)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		if path != "" {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return nil, "", err
	}
	return cfg, path, nil
}

func readConfig(configPath string) (*config.Config, string, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return config.Merge(defaults, loaded), configPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}

	return config.Merge(defaults, loaded), discovered, nil
}
