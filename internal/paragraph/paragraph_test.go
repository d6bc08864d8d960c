package paragraph

import (
	"reflect"
	"testing"

	"github.com/jemcclin/readabilitycheck/internal/mdtext"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		kind        mdtext.Kind
		frontMatter bool
		want        []Paragraph
	}{
		{
			name: "markdown paragraphs",
			src:  "# Title\n\nThe *cat* sat.\nIt was\nhappy.\n\n```\ncode here\n```\n\nA [dog](http://x) ran.\n",
			kind: mdtext.KindMarkdown,
			want: []Paragraph{
				{Line: 3, Text: "The cat sat. It was happy."},
				{Line: 11, Text: "A dog ran."},
			},
		},
		{
			name: "markdown table skipped",
			src:  "| a | b |\n|---|---|\n| 1 | 2 |\n\nText.\n",
			kind: mdtext.KindMarkdown,
			want: []Paragraph{{Line: 5, Text: "Text."}},
		},
		{
			name:        "front matter keeps line numbers",
			src:         "---\ntitle: x\n---\nFirst line.\n",
			kind:        mdtext.KindMarkdown,
			frontMatter: true,
			want:        []Paragraph{{Line: 4, Text: "First line."}},
		},
		{
			name: "list items",
			src:  "- one item\n- two item\n",
			kind: mdtext.KindMarkdown,
			want: nil,
		},
		{
			name: "plain text",
			src:  "One line.\nTwo line.\n\n\n  Three.  \n",
			kind: mdtext.KindPlainText,
			want: []Paragraph{
				{Line: 1, Text: "One line. Two line."},
				{Line: 5, Text: "Three."},
			},
		},
		{
			name: "other kind",
			src:  "<p>Hi.</p>",
			kind: mdtext.KindHTML,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split([]byte(tt.src), tt.kind, tt.frontMatter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
