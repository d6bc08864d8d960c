package mdtext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Stripper removes markup from a document and returns the visible text.
// Implementations must keep every visible word.
type Stripper interface {
	Strip(src []byte) string
}

// StripperFor returns the stripper used for documents of kind k.
func StripperFor(k Kind) Stripper {
	switch k {
	case KindMarkdown:
		return Markdown{}
	case KindHTML:
		return HTML{}
	default:
		return Plain{}
	}
}

// Plain returns its input unchanged.
type Plain struct{}

// Strip implements Stripper.
func (Plain) Strip(src []byte) string { return string(src) }

// Markdown strips Markdown syntax by walking the goldmark AST.
type Markdown struct{}

// Strip implements Stripper.
func (Markdown) Strip(src []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	return ExtractPlainText(doc, src)
}

// ExtractPlainText returns the visible text below node. Link and image
// text, code span content and emphasis content are kept; soft line
// breaks become spaces and every block ends with a newline. Raw HTML
// is dropped. Outside code spans, backslash escapes are removed and
// entity references are resolved.
func ExtractPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				b.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch v := n.(type) {
		case *ast.Text:
			b.Write(textValue(v, source))
			switch {
			case v.HardLineBreak():
				b.WriteByte('\n')
			case v.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(b.String(), "\n")
}

// textValue returns the visible bytes of a text node, decoded the way
// goldmark's HTML renderer decodes them.
func textValue(t *ast.Text, source []byte) []byte {
	value := t.Segment.Value(source)
	if p := t.Parent(); p != nil && p.Kind() == ast.KindCodeSpan {
		return value
	}
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	return util.ResolveEntityNames(value)
}

// HTML strips tags with golang.org/x/net/html, skipping script, style
// and head content.
type HTML struct{}

// Strip implements Stripper. Unparseable input is returned unchanged.
func (HTML) Strip(src []byte) string {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil || root == nil {
		return string(src)
	}
	var b strings.Builder
	collectHTMLText(&b, root)
	return strings.TrimRight(b.String(), "\n")
}

func collectHTMLText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Noscript, atom.Template:
			return
		case atom.Br:
			b.WriteByte('\n')
			return
		case atom.Img:
			for _, a := range n.Attr {
				if a.Key == "alt" {
					b.WriteString(a.Val)
				}
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectHTMLText(b, c)
	}

	if n.Type == html.ElementNode && isHTMLBlock(n.DataAtom) {
		b.WriteByte('\n')
	}
}

func isHTMLBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Tr, atom.Table,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Pre, atom.Section, atom.Article, atom.Main:
		return true
	}
	return false
}
