package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// Config is the top-level configuration.
type Config struct {
	Formula     string               `yaml:"formula,omitempty"`
	Kinds       []string             `yaml:"kinds,omitempty"`
	FrontMatter *bool                `yaml:"front-matter,omitempty"`
	Files       []string             `yaml:"files,omitempty"`
	Ignore      []string             `yaml:"ignore,omitempty"`
	Thresholds  map[string]Threshold `yaml:"thresholds,omitempty"`
	Overrides   []Override           `yaml:"overrides,omitempty"`
}

// Override applies a formula and thresholds to files matching glob
// patterns.
type Override struct {
	Files      []string             `yaml:"files"`
	Formula    string               `yaml:"formula,omitempty"`
	Thresholds map[string]Threshold `yaml:"thresholds,omitempty"`
}

// Threshold bounds a formula's score. A nil bound is not checked.
type Threshold struct {
	Max *float64
	Min *float64
}

type thresholdBounds struct {
	Max *float64 `yaml:"max,omitempty"`
	Min *float64 `yaml:"min,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshalling for Threshold.
// It handles two forms:
//   - 12             -> Max=12
//   - {max: 12, min: 4}
func (t *Threshold) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("threshold must be a number: %w", err)
		}
		t.Max = &v
		t.Min = nil
		return nil
	}

	if value.Kind == yaml.MappingNode {
		var b thresholdBounds
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("invalid threshold: %w", err)
		}
		t.Max = b.Max
		t.Min = b.Min
		return nil
	}

	return fmt.Errorf("threshold must be a number or a mapping, got %v", value.Kind)
}

// MarshalYAML writes the mapping form.
func (t Threshold) MarshalYAML() (any, error) {
	return thresholdBounds(t), nil
}

// IsZero reports whether neither bound is set.
func (t Threshold) IsZero() bool {
	return t.Max == nil && t.Min == nil
}

// Violated reports whether value falls outside the bounds.
func (t Threshold) Violated(value float64) bool {
	if t.Max != nil && value > *t.Max {
		return true
	}
	if t.Min != nil && value < *t.Min {
		return true
	}
	return false
}

// Describe names the bound value crosses, e.g. "above max 12".
func (t Threshold) Describe(value float64) string {
	if t.Max != nil && value > *t.Max {
		return fmt.Sprintf("above max %g", *t.Max)
	}
	if t.Min != nil && value < *t.Min {
		return fmt.Sprintf("below min %g", *t.Min)
	}
	return ""
}

// Float returns a pointer to v, for building thresholds in code.
func Float(v float64) *float64 { return &v }

// ScoredKinds returns the document kinds named by cfg.Kinds. Unknown
// names are skipped. A nil Kinds means the default kinds.
func (c *Config) ScoredKinds() []mdtext.Kind {
	if c.Kinds == nil {
		return readability.DefaultKinds()
	}
	kinds := make([]mdtext.Kind, 0, len(c.Kinds))
	for _, raw := range c.Kinds {
		if k := mdtext.ParseKind(raw); k != mdtext.KindOther {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// FrontMatterEnabled returns whether front matter stripping is enabled.
// Defaults to true if not set.
func (c *Config) FrontMatterEnabled() bool {
	if c.FrontMatter != nil {
		return *c.FrontMatter
	}
	return true
}

// EngineOptions returns the readability options implied by cfg.
func (c *Config) EngineOptions() []readability.Option {
	return []readability.Option{
		readability.WithKinds(c.ScoredKinds()...),
		readability.WithFrontMatter(c.FrontMatterEnabled()),
	}
}
