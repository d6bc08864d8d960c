// Package output renders score reports.
package output

import (
	"io"

	"github.com/jemcclin/readabilitycheck/internal/lint"
)

// Formatter defines the interface for outputting reports.
type Formatter interface {
	Format(w io.Writer, reports []lint.Report) error
}

// New returns the formatter for format ("text" or "json"). Unknown
// formats get the text formatter.
func New(format string, color bool) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{Color: color}
}
