package pipeline

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark/ast"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 1 1"><path d="M0 0"/></svg>`

func testStatic() fstest.MapFS {
	return fstest.MapFS{
		"logo.svg":    &fstest.MapFile{Data: []byte(testSVG + "\n")},
		"my logo.svg": &fstest.MapFile{Data: []byte(testSVG)},
		"photo.png":   &fstest.MapFile{Data: []byte("png")},
	}
}

// parseAndRender runs the transformer and renders its events.
func parseAndRender(t *testing.T, tr *MarkdownTransformer, src string) (string, []PreloadHint) {
	t.Helper()

	doc, hints, err := tr.Parse(src)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return buf.String(), hints
}

func TestMarkdownTransformer_Images(t *testing.T) {
	t.Parallel()

	preloadOnly := Settings{MaxInlineSize: 12 * 1024, Preload: true}
	inlineAndPreload := Settings{MaxInlineSize: 12 * 1024, Preload: true, InlineSVG: true}

	tests := []struct {
		name         string
		settings     Settings
		markdown     string
		wantHints    []PreloadHint
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "local image preloaded",
			settings:     preloadOnly,
			markdown:     "![photo](/photo.png)",
			wantHints:    []PreloadHint{{Path: "photo.png", Kind: PreloadImage}},
			wantContains: []string{`<img src="/photo.png" alt="photo"`},
		},
		{
			name:         "preload disabled",
			settings:     Settings{MaxInlineSize: 12 * 1024},
			markdown:     "![photo](/photo.png)",
			wantHints:    nil,
			wantContains: []string{`<img src="/photo.png"`},
		},
		{
			name:         "remote image ignored",
			settings:     preloadOnly,
			markdown:     "![x](https://example.com/a.png)",
			wantHints:    nil,
			wantContains: []string{`<img src="https://example.com/a.png"`},
		},
		{
			name:         "relative image ignored",
			settings:     preloadOnly,
			markdown:     "![x](photo.png)",
			wantHints:    nil,
			wantContains: []string{`<img src="photo.png"`},
		},
		{
			name:     "hints in document order",
			settings: preloadOnly,
			markdown: "![a](/a.png)\n\n- ![b](/b.png)\n\n> ![c](/c.png)",
			wantHints: []PreloadHint{
				{Path: "a.png", Kind: PreloadImage},
				{Path: "b.png", Kind: PreloadImage},
				{Path: "c.png", Kind: PreloadImage},
			},
		},
		{
			name:         "svg not inlined when disabled",
			settings:     preloadOnly,
			markdown:     "![logo](/logo.svg)",
			wantHints:    []PreloadHint{{Path: "logo.svg", Kind: PreloadImage}},
			wantContains: []string{`<img src="/logo.svg"`},
			wantAbsent:   []string{"<svg"},
		},
		{
			name:         "small svg inlined",
			settings:     inlineAndPreload,
			markdown:     "![logo](/logo.svg \"Logo\")",
			wantHints:    nil,
			wantContains: []string{`<p><svg viewBox="0 0 1 1"><title>Logo</title><path d="M0 0"/></svg></p>`},
			wantAbsent:   []string{"<img", "xmlns"},
		},
		{
			name:         "inlined svg without title",
			settings:     inlineAndPreload,
			markdown:     "![logo](/logo.svg)",
			wantContains: []string{`<p><svg viewBox="0 0 1 1"><path d="M0 0"/></svg></p>`},
			wantAbsent:   []string{"<title>"},
		},
		{
			name:         "title escaped",
			settings:     inlineAndPreload,
			markdown:     "![logo](/logo.svg \"A & B\")",
			wantContains: []string{"<title>A &amp; B</title>"},
		},
		{
			name:         "title entity resolved before escaping",
			settings:     inlineAndPreload,
			markdown:     "![logo](/logo.svg \"A &amp; B\")",
			wantContains: []string{"<title>A &amp; B</title>"},
			wantAbsent:   []string{"&amp;amp;"},
		},
		{
			name:         "title backslash escapes resolved",
			settings:     inlineAndPreload,
			markdown:     "![logo](/logo.svg \"a \\\"q\\\"\")",
			wantContains: []string{"<title>a &#34;q&#34;</title>"},
			wantAbsent:   []string{`\&#34;`},
		},
		{
			name:         "title numeric reference resolved",
			settings:     inlineAndPreload,
			markdown:     "![logo](/logo.svg \"caf&#233;\")",
			wantContains: []string{"<title>café</title>"},
		},
		{
			name:         "percent-encoded source",
			settings:     inlineAndPreload,
			markdown:     "![logo](/my%20logo.svg)",
			wantContains: []string{`<svg viewBox="0 0 1 1">`},
			wantAbsent:   []string{"<img"},
		},
		{
			name:         "svg over inline limit preloaded",
			settings:     Settings{MaxInlineSize: 10, Preload: true, InlineSVG: true},
			markdown:     "![logo](/logo.svg)",
			wantHints:    []PreloadHint{{Path: "logo.svg", Kind: PreloadImage}},
			wantContains: []string{`<img src="/logo.svg"`},
			wantAbsent:   []string{"<svg"},
		},
		{
			name:     "inlined svg between preloaded images",
			settings: inlineAndPreload,
			markdown: "![a](/a.png) ![logo](/logo.svg) ![b](/b.png)",
			wantHints: []PreloadHint{
				{Path: "a.png", Kind: PreloadImage},
				{Path: "b.png", Kind: PreloadImage},
			},
			wantContains: []string{`<img src="/a.png"`, "<svg", `<img src="/b.png"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewMarkdownTransformer(testStatic(), tt.settings)
			out, hints := parseAndRender(t, tr, tt.markdown)

			if diff := cmp.Diff(tt.wantHints, hints); diff != "" {
				t.Errorf("hints mismatch (-want +got):\n%s", diff)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(out, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, out)
				}
			}
		})
	}
}

func TestMarkdownTransformer_Errors(t *testing.T) {
	t.Parallel()

	settings := Settings{MaxInlineSize: 12 * 1024, Preload: true, InlineSVG: true}

	tests := []struct {
		name     string
		markdown string
		wantErr  []error
	}{
		{
			name:     "missing svg",
			markdown: "![x](/missing.svg)",
			wantErr:  []error{ErrRead, fs.ErrNotExist},
		},
		{
			name:     "escapes static directory",
			markdown: "![x](/../secret.svg)",
			wantErr:  []error{ErrImagePath},
		},
		{
			name:     "malformed percent encoding",
			markdown: "![x](/bad%zz.svg)",
			wantErr:  []error{ErrImagePath},
		},
		{
			name:     "decodes to invalid utf8",
			markdown: "![x](/bad%ff.svg)",
			wantErr:  []error{ErrImagePath, ErrInvalidUTF8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := NewMarkdownTransformer(testStatic(), settings)
			_, _, err := tr.Parse(tt.markdown)
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Parse() error = %v, want %v", err, want)
				}
			}
		})
	}
}

func TestMarkdownTransformer_SVGReplacesImageExit(t *testing.T) {
	t.Parallel()

	tr := NewMarkdownTransformer(testStatic(), Settings{MaxInlineSize: 1 << 20, InlineSVG: true})
	doc, _, err := tr.Parse("![logo](/logo.svg)")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	var kinds []EventKind
	var fragments int
	for _, ev := range doc.Events {
		kinds = append(kinds, ev.Kind)
		if ev.Kind == EventHTML {
			fragments++
			continue
		}
		if ev.Node.Kind() == ast.KindImage {
			t.Errorf("image %s event should have been replaced", ev.Kind)
		}
	}
	if fragments != 1 {
		t.Errorf("got %d fragment events, want 1: %v", fragments, kinds)
	}

	// document > paragraph > fragment
	want := []EventKind{EventEnter, EventEnter, EventHTML, EventExit, EventExit}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("event kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_ImageIsLeaf(t *testing.T) {
	t.Parallel()

	tr := NewMarkdownTransformer(fstest.MapFS{}, Settings{})
	doc, _, err := tr.Parse("![alt *text*](/a.png)")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	for i, ev := range doc.Events {
		if ev.Kind != EventEnter || ev.Node.Kind() != ast.KindImage {
			continue
		}
		next := doc.Events[i+1]
		if next.Kind != EventExit || next.Node != ev.Node {
			t.Errorf("image enter followed by %s %v, want its exit", next.Kind, next.Node.Kind())
		}
		return
	}
	t.Fatal("no image event found")
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	tests := map[EventKind]string{
		EventEnter:    "enter",
		EventExit:     "exit",
		EventHTML:     "html",
		EventKind(42): "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
