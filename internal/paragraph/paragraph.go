// Package paragraph splits documents into paragraphs so each can be
// scored on its own.
package paragraph

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
)

// DefaultMinWords is the word count below which a paragraph is too
// short to score meaningfully.
const DefaultMinWords = 20

// Paragraph is the visible text of one paragraph, whitespace collapsed,
// and the 1-based line it starts on.
type Paragraph struct {
	Line int
	Text string
}

// Split returns the paragraphs of src. Markdown paragraphs come from
// the goldmark AST: headings, code blocks and tight list items are not
// paragraphs, and pipe tables are skipped. When stripFrontMatter is
// set, a leading front matter block is removed and line numbers still
// refer to src. Plain text paragraphs are runs of non-blank lines.
// Other kinds have no paragraphs.
func Split(src []byte, kind mdtext.Kind, stripFrontMatter bool) []Paragraph {
	switch kind {
	case mdtext.KindMarkdown:
		offset := 0
		if stripFrontMatter {
			prefix, body := mdtext.StripFrontMatter(src)
			offset = bytes.Count(prefix, []byte("\n"))
			src = body
		}
		return splitMarkdown(src, offset)
	case mdtext.KindPlainText:
		return splitPlain(string(src))
	default:
		return nil
	}
}

func splitMarkdown(src []byte, offset int) []Paragraph {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out []Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		para, ok := n.(*ast.Paragraph)
		if !ok || para.Lines().Len() == 0 || isTable(para, src) {
			return ast.WalkContinue, nil
		}
		t := mdtext.CollapseWhitespace(mdtext.ExtractPlainText(para, src))
		if t == "" {
			return ast.WalkSkipChildren, nil
		}
		start := para.Lines().At(0).Start
		out = append(out, Paragraph{
			Line: offset + 1 + bytes.Count(src[:start], []byte("\n")),
			Text: t,
		})
		return ast.WalkSkipChildren, nil
	})
	return out
}

// isTable reports whether the paragraph's first line starts with a
// pipe. goldmark without the table extension parses tables as
// paragraphs.
func isTable(para *ast.Paragraph, src []byte) bool {
	seg := para.Lines().At(0)
	return bytes.HasPrefix(bytes.TrimSpace(src[seg.Start:seg.Stop]), []byte("|"))
}

func splitPlain(src string) []Paragraph {
	var (
		out   []Paragraph
		buf   []string
		start int
	)
	flush := func() {
		if len(buf) > 0 {
			out = append(out, Paragraph{Line: start, Text: mdtext.CollapseWhitespace(strings.Join(buf, " "))})
			buf = buf[:0]
		}
	}
	for i, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(buf) == 0 {
			start = i + 1
		}
		buf = append(buf, line)
	}
	flush()
	return out
}
