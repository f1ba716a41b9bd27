package pipeline

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const mixedMarkdown = "# Hello World\n\n" +
	"Some *emphasis*, **strong**, `code` and ~~struck~~ text.\n" +
	"A soft break and a [link](https://example.com \"Example\").\n\n" +
	"- [x] done\n- [ ] todo\n\n" +
	"| a | b |\n|---|---|\n| 1 | 2 |\n\n" +
	"```go\nfunc main() {}\n```\n\n" +
	"<div class=\"raw\">raw html</div>\n\n" +
	"Footnote reference[^1] and https://autolink.example.com.\n\n" +
	"![alt *text*](https://example.com/a.png)\n\n" +
	"[^1]: The note.\n"

func TestRender_MatchesGoldmarkConvert(t *testing.T) {
	t.Parallel()

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var want bytes.Buffer
	if err := md.Convert([]byte(mixedMarkdown), &want); err != nil {
		t.Fatalf("Convert() unexpected error: %v", err)
	}

	tr := NewMarkdownTransformer(fstest.MapFS{}, Settings{})
	got, _ := parseAndRender(t, tr, mixedMarkdown)

	if diff := cmp.Diff(want.String(), got); diff != "" {
		t.Errorf("Render() mismatch (-goldmark +replayed):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "paragraph",
			markdown: "Hello",
			want:     "<p>Hello</p>\n",
		},
		{
			name:     "emphasis",
			markdown: "*a* **b**",
			want:     "<p><em>a</em> <strong>b</strong></p>\n",
		},
		{
			name:     "code span rendered once",
			markdown: "`x`",
			want:     "<p><code>x</code></p>\n",
		},
		{
			name:     "heading id",
			markdown: "# Hello World",
			want:     "<h1 id=\"hello-world\">Hello World</h1>\n",
		},
		{
			name:     "strikethrough",
			markdown: "~~gone~~",
			want:     "<p><del>gone</del></p>\n",
		},
		{
			name:     "raw html passes through",
			markdown: "<div>hi</div>",
			want:     "<div>hi</div>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewMarkdownTransformer(fstest.MapFS{}, Settings{})
			got, _ := parseAndRender(t, tr, tt.markdown)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Extensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		contains string
	}{
		{name: "table", markdown: "| a |\n|---|\n| 1 |", contains: "<table>"},
		{name: "task list", markdown: "- [x] done", contains: `type="checkbox"`},
		{name: "footnote", markdown: "a[^1]\n\n[^1]: note", contains: "footnote"},
		{name: "highlighted code", markdown: "```go\nvar x = 1\n```", contains: "chroma"},
		{name: "autolink", markdown: "see https://example.com now", contains: `<a href="https://example.com">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewMarkdownTransformer(fstest.MapFS{}, Settings{})
			got, _ := parseAndRender(t, tr, tt.markdown)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Render() missing %q:\n%s", tt.contains, got)
			}
		})
	}
}

func TestRender_FragmentVerbatim(t *testing.T) {
	t.Parallel()

	doc := &Document{Events: []Event{{Kind: EventHTML, HTML: "<b>as is</b>"}}}

	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if buf.String() != "<b>as is</b>" {
		t.Errorf("Render() = %q", buf.String())
	}
}

func TestMatchingExit(t *testing.T) {
	t.Parallel()

	tr := NewMarkdownTransformer(fstest.MapFS{}, Settings{})
	doc, _, err := tr.Parse("Hello")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	// document, paragraph, text
	if got := matchingExit(doc.Events, 0); got != len(doc.Events)-1 {
		t.Errorf("matchingExit(document) = %d, want %d", got, len(doc.Events)-1)
	}
	if got := matchingExit(doc.Events[:1], 0); got != 1 {
		t.Errorf("matchingExit() without exit = %d, want 1", got)
	}
}
