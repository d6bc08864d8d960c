package output

import (
	"fmt"
	"io"

	"github.com/jemcclin/readabilitycheck/internal/lint"
)

// TextFormatter outputs reports in human-readable text format.
// When Color is true, the file is printed in cyan and a crossed
// threshold in red.
type TextFormatter struct {
	Color bool
}

// Format writes each report as a single line in the pattern:
// file[:line]: <name> score: <value> (threshold)
// The file prefix is left out for whole documents without a path.
func (f *TextFormatter) Format(w io.Writer, reports []lint.Report) error {
	for _, r := range reports {
		line := r.Status()
		if r.Failed() {
			msg := "(" + r.Message + ")"
			if f.Color {
				msg = "\033[31m" + msg + "\033[0m"
			}
			line += " " + msg
		}
		if loc := r.Location(); loc != "" {
			file := loc + ":"
			if f.Color {
				file = "\033[36m" + file + "\033[0m"
			}
			line = file + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
