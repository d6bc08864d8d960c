package lint

import (
	"fmt"
	"io"
	"os"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
)

// Document holds a document's source and the kind it is scored as.
type Document struct {
	Path   string
	Kind   mdtext.Kind
	Source []byte
}

// NewDocument returns a Document. An empty kind is derived from the
// path's extension.
func NewDocument(path string, kind mdtext.Kind, source []byte) *Document {
	if kind == "" {
		kind = mdtext.KindOf(path)
	}
	return &Document{Path: path, Kind: kind, Source: source}
}

// ReadDocument reads the file at path.
func ReadDocument(path string) (*Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return NewDocument(path, "", source), nil
}

// ReadDocumentFrom reads a document of the given kind from r, as for
// stdin. The document has an empty path.
func ReadDocumentFrom(r io.Reader, kind mdtext.Kind) (*Document, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return &Document{Kind: kind, Source: source}, nil
}

// Text returns the document source as a string.
func (d *Document) Text() string { return string(d.Source) }
