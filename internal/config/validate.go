package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Validate reports settings that can never take effect: unknown
// document kinds, malformed patterns, thresholds keyed by unknown
// formulas and thresholds whose min exceeds their max. An unknown
// top-level or override formula is not an error; it resolves to
// Automated Readability.
func Validate(cfg *Config) error {
	var errs []error

	for _, k := range cfg.Kinds {
		if mdtext.ParseKind(k) == mdtext.KindOther {
			errs = append(errs, fmt.Errorf("kinds: unknown document kind %q", k))
		}
	}
	for _, p := range cfg.Files {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("files: invalid pattern %q", p))
		}
	}
	errs = append(errs, validateGlobs("ignore", cfg.Ignore)...)
	errs = append(errs, validateThresholds("thresholds", cfg.Thresholds)...)

	for i, o := range cfg.Overrides {
		prefix := fmt.Sprintf("overrides[%d]", i)
		if len(o.Files) == 0 {
			errs = append(errs, fmt.Errorf("%s: files is empty", prefix))
		}
		errs = append(errs, validateGlobs(prefix+".files", o.Files)...)
		errs = append(errs, validateThresholds(prefix+".thresholds", o.Thresholds)...)
	}

	return errors.Join(errs...)
}

func validateGlobs(field string, patterns []string) []error {
	var errs []error
	for _, p := range patterns {
		if _, err := glob.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid pattern %q: %w", field, p, err))
		}
	}
	return errs
}

func validateThresholds(field string, thresholds map[string]Threshold) []error {
	keys := make([]string, 0, len(thresholds))
	for k := range thresholds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		t := thresholds[k]
		if _, ok := readability.LookupFormula(k); !ok {
			errs = append(errs, fmt.Errorf("%s: unknown formula %q", field, k))
			continue
		}
		if t.Max != nil && t.Min != nil && *t.Min > *t.Max {
			errs = append(errs, fmt.Errorf("%s.%s: min %g exceeds max %g", field, k, *t.Min, *t.Max))
		}
	}
	return errs
}
