package mdtext

import (
	"path/filepath"
	"strings"
)

// Kind identifies the markup a document is written in.
type Kind string

// Document kinds.
const (
	KindMarkdown  Kind = "markdown"
	KindPlainText Kind = "plaintext"
	KindHTML      Kind = "html"
	KindOther     Kind = "other"
)

// ParseKind maps a user or host supplied language id to a Kind.
// Unrecognized values map to KindOther.
func ParseKind(raw string) Kind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "markdown", "md":
		return KindMarkdown
	case "plaintext", "plain", "text", "txt":
		return KindPlainText
	case "html", "htm":
		return KindHTML
	default:
		return KindOther
	}
}

// KindOf returns the Kind implied by a file's extension.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return KindMarkdown
	case ".txt", ".text":
		return KindPlainText
	case ".html", ".htm":
		return KindHTML
	default:
		return KindOther
	}
}

// Extensions returns the file extensions that map to k.
func Extensions(k Kind) []string {
	switch k {
	case KindMarkdown:
		return []string{".md", ".markdown"}
	case KindPlainText:
		return []string{".txt", ".text"}
	case KindHTML:
		return []string{".html", ".htm"}
	default:
		return nil
	}
}
