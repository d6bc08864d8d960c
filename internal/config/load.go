package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// FileName is the config file looked up by Discover.
const FileName = ".readabilitycheck.yml"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .readabilitycheck.yml config file. It stops searching when it
// encounters a .git directory (the repository root) or reaches the
// filesystem root. Returns the path to the config file, or "" if none
// was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repo root.
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns the built-in configuration: Automated Readability,
// Markdown and plain text scored, front matter stripped.
func Defaults() *Config {
	fm := true
	return &Config{
		Formula:     readability.AutomatedReadability.String(),
		Kinds:       kindNames(readability.DefaultKinds()),
		FrontMatter: &fm,
		Files:       []string{"**/*.md", "**/*.markdown", "**/*.txt"},
	}
}

// DumpDefaults returns Defaults with an example threshold for every
// formula, the shape written by `readabilitycheck init`. Grade-level
// formulas get a max; Flesch Reading Ease, where higher is easier, gets
// a min.
func DumpDefaults() *Config {
	cfg := Defaults()
	cfg.Thresholds = make(map[string]Threshold)
	for _, f := range readability.Formulas() {
		cfg.Thresholds[f.String()] = exampleThreshold(f)
	}
	return cfg
}

func exampleThreshold(f readability.Formula) Threshold {
	switch f {
	case readability.Flesch:
		return Threshold{Min: Float(50)}
	case readability.DaleChall:
		return Threshold{Max: Float(9.9)}
	case readability.Spache:
		return Threshold{Max: Float(4)}
	default:
		return Threshold{Max: Float(12)}
	}
}

func kindNames(kinds []mdtext.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
