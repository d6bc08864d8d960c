package output

import (
	"encoding/json"
	"io"

	"github.com/jemcclin/readabilitycheck/internal/lint"
	"github.com/jemcclin/readabilitycheck/internal/readability"
)

// JSONFormatter outputs reports as a JSON array.
type JSONFormatter struct{}

type jsonReport struct {
	File     string              `json:"file,omitempty"`
	Line     int                 `json:"line,omitempty"`
	Kind     string              `json:"kind"`
	Formula  string              `json:"formula"`
	Name     string              `json:"name"`
	Score    *float64            `json:"score"`
	Status   string              `json:"status"`
	Metrics  readability.Metrics `json:"metrics"`
	Severity string              `json:"severity"`
	Message  string              `json:"message,omitempty"`
}

// Format writes reports as a pretty-printed JSON array. Documents
// without a score have a null score. An empty slice produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []lint.Report) error {
	items := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		item := jsonReport{
			File:     r.File,
			Line:     r.Line,
			Kind:     string(r.Kind),
			Formula:  r.Result.Formula.String(),
			Name:     r.Result.Name,
			Status:   r.Status(),
			Metrics:  r.Metrics,
			Severity: string(r.Severity),
			Message:  r.Message,
		}
		if r.Result.OK {
			v := r.Result.Value
			item.Score = &v
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
