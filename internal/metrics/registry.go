package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jemcclin/readabilitycheck/internal/readability"
	"github.com/jemcclin/readabilitycheck/internal/vocab"
)

func count(id, name, desc string, dflt bool, fn func(d *Document) int) Definition {
	return Definition{
		ID:           id,
		Name:         name,
		Description:  desc,
		Kind:         KindInteger,
		Default:      dflt,
		DefaultOrder: OrderDesc,
		Compute: func(d *Document) Value {
			return AvailableValue(float64(fn(d)))
		},
	}
}

var registry = buildRegistry()

func buildRegistry() []Definition {
	defs := []Definition{
		count("RDM001", "bytes", "File size measured in bytes.", false,
			(*Document).ByteCount),
		count("RDM002", "lines", "Total line count.", false,
			(*Document).LineCount),
		count("RDM003", "words", "Words in the normalized text.", true,
			func(d *Document) int { return d.Metrics("").Words }),
		count("RDM004", "sentences", "Sentences in the normalized text (at least 1 when there are words).", true,
			func(d *Document) int { return d.Metrics("").Sentences }),
		count("RDM005", "characters", "Non-space characters in the normalized text.", false,
			func(d *Document) int { return d.Metrics("").Characters }),
		count("RDM006", "syllables", "Estimated syllables in the normalized text.", true,
			func(d *Document) int { return d.Metrics("").Syllables }),
		count("RDM007", "polysyllables", "Words of three or more syllables.", false,
			func(d *Document) int { return d.Metrics("").Polysyllables }),
		count("RDM008", "difficult-words", "Words missing from the Dale-Chall familiar list.", false,
			func(d *Document) int { return d.Metrics(vocab.DaleChall).DifficultWords }),
	}

	for i, f := range readability.Formulas() {
		defs = append(defs, formulaDefinition(fmt.Sprintf("RDM%03d", 101+i), f))
	}
	return defs
}

func formulaDefinition(id string, f readability.Formula) Definition {
	def := Definition{
		ID:           id,
		Name:         f.String(),
		Description:  f.DisplayName() + ": " + f.Description(),
		Kind:         KindInteger,
		Precision:    f.Precision(),
		Default:      f == readability.AutomatedReadability || f == readability.Flesch,
		DefaultOrder: OrderDesc,
		Compute: func(d *Document) Value {
			r := d.Score(f)
			if !r.OK {
				return UnavailableValue()
			}
			return AvailableValue(r.Value)
		},
	}
	if f.Precision() > 0 {
		def.Kind = KindFloat
	}
	if f.HigherIsEasier() {
		def.DefaultOrder = OrderAsc
	}
	return def
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive), by name, or by any
// formula selector such as "ari".
func Lookup(query string) (Definition, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Definition{}, false
	}
	for _, def := range All() {
		if strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q) {
			return def, true
		}
	}
	if f, ok := readability.LookupFormula(q); ok {
		return Lookup(f.String())
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs. Empty names returns
// the default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
