package config

import (
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Merge merges a loaded config on top of defaults. Scalar settings and
// kinds set in loaded replace the defaults; thresholds are merged per
// formula. Ignore and Overrides come from the loaded config only, and
// Files falls back to the defaults when loaded sets none.
func Merge(defaults, loaded *Config) *Config {
	out := &Config{
		Formula:     defaults.Formula,
		Kinds:       append([]string(nil), defaults.Kinds...),
		FrontMatter: defaults.FrontMatter,
		Files:       append([]string(nil), defaults.Files...),
		Thresholds:  copyThresholds(defaults.Thresholds),
	}
	if loaded == nil {
		return out
	}

	if loaded.Formula != "" {
		out.Formula = loaded.Formula
	}
	if loaded.Kinds != nil {
		out.Kinds = append([]string(nil), loaded.Kinds...)
	}
	if loaded.FrontMatter != nil {
		out.FrontMatter = loaded.FrontMatter
	}
	if len(loaded.Files) > 0 {
		out.Files = append([]string(nil), loaded.Files...)
	}
	for k, v := range loaded.Thresholds {
		if out.Thresholds == nil {
			out.Thresholds = make(map[string]Threshold)
		}
		out.Thresholds[k] = v
	}
	out.Ignore = loaded.Ignore
	out.Overrides = loaded.Overrides
	return out
}

func copyThresholds(in map[string]Threshold) map[string]Threshold {
	if in == nil {
		return nil
	}
	out := make(map[string]Threshold, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Settings is the configuration that applies to one file.
type Settings struct {
	Formula   readability.Formula
	Threshold Threshold
}

// Effective returns the settings for filePath. It starts with the
// top-level formula and thresholds and then applies each override whose
// file patterns match filePath, in order. Later overrides take
// precedence. Unknown formula names resolve to Automated Readability.
func Effective(cfg *Config, filePath string) Settings {
	formula, thresholds := resolve(cfg, filePath)
	f := readability.ParseFormula(formula)
	return Settings{Formula: f, Threshold: thresholdFor(thresholds, f)}
}

// EffectiveFor is Effective with the formula fixed to f, as when it is
// chosen on the command line. Thresholds still follow the overrides.
func EffectiveFor(cfg *Config, filePath string, f readability.Formula) Settings {
	_, thresholds := resolve(cfg, filePath)
	return Settings{Formula: f, Threshold: thresholdFor(thresholds, f)}
}

func resolve(cfg *Config, filePath string) (string, map[string]Threshold) {
	formula := cfg.Formula
	thresholds := copyThresholds(cfg.Thresholds)

	for _, o := range cfg.Overrides {
		if !matchesAny(o.Files, filePath) {
			continue
		}
		if o.Formula != "" {
			formula = o.Formula
		}
		for k, v := range o.Thresholds {
			if thresholds == nil {
				thresholds = make(map[string]Threshold)
			}
			thresholds[k] = v
		}
	}
	return formula, thresholds
}

// thresholdFor finds the threshold keyed by any spelling of f.
func thresholdFor(thresholds map[string]Threshold, f readability.Formula) Threshold {
	if t, ok := thresholds[f.String()]; ok {
		return t
	}
	for k, t := range thresholds {
		if g, ok := readability.LookupFormula(k); ok && g == f {
			return t
		}
	}
	return Threshold{}
}

// IsIgnored reports whether filePath, its cleaned form or its base name
// matches a top-level ignore pattern.
func IsIgnored(cfg *Config, filePath string) bool {
	return matchesAny(cfg.Ignore, filePath) ||
		matchesAny(cfg.Ignore, filepath.Clean(filePath)) ||
		matchesAny(cfg.Ignore, filepath.Base(filePath))
}

// matchesAny returns true if filePath matches any of the given glob patterns.
func matchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			// Invalid patterns are reported by Validate.
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}
