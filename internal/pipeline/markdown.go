package pipeline

import (
	"bytes"
	"fmt"
	"html"
	"io/fs"
	"net/url"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Settings carries the switches that change compiled output.
type Settings struct {
	MaxInlineSize int64 // largest stylesheet or SVG inlined, in bytes
	Preload       bool
	InlineCSS     bool
	InlineSVG     bool
}

// transformState is the carried state of the event rewrite. After a local
// SVG image is inlined, the next event is replaced by the SVG markup.
type transformState int

const (
	stateIdle transformState = iota
	stateSVGPending
)

// MarkdownTransformer parses markdown pages and rewrites their local images.
type MarkdownTransformer struct {
	static   fs.FS
	settings Settings
	md       goldmark.Markdown
}

// NewMarkdownTransformer creates a transformer resolving local image
// paths in static, the static asset directory.
func NewMarkdownTransformer(static fs.FS, settings Settings) *MarkdownTransformer {
	return &MarkdownTransformer{
		static:   static,
		settings: settings,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,      // Tables, strikethrough, autolinks, task lists
				extension.Footnote, // [^1] footnotes
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(), // Generate IDs for headings (anchor links)
			),
		),
	}
}

// Parse parses src and returns its event stream along with the image
// preload hints, in document order.
//
// A site-local image (source starting with "/") ending in .svg is inlined
// when SVG inlining is on and the file is no larger than the inline limit:
// the image is dropped and its markup takes the place of the event that
// follows it. Other site-local images get a preload hint when preloading
// is on. Inlined images never produce hints.
func (t *MarkdownTransformer) Parse(src string) (*Document, []PreloadHint, error) {
	source := []byte(src)
	root := t.md.Parser().Parse(text.NewReader(source))

	events, hints, err := t.rewrite(flatten(root))
	if err != nil {
		return nil, nil, err
	}
	return &Document{Source: source, Events: events}, hints, nil
}

func (t *MarkdownTransformer) rewrite(in []Event) ([]Event, []PreloadHint, error) {
	out := make([]Event, 0, len(in))
	var hints []PreloadHint

	state := stateIdle
	var pending string

	for _, ev := range in {
		if img := localImage(ev); img != nil {
			svg, inlined, err := t.inline(img)
			if err != nil {
				return nil, nil, err
			}
			if inlined {
				state, pending = stateSVGPending, svg
				continue
			}

			if t.settings.Preload {
				h, err := NewPreloadHint(string(img.Destination), PreloadImage)
				if err != nil {
					return nil, nil, err
				}
				hints = append(hints, h)
			}
			out = append(out, ev)
			continue
		}

		switch state {
		case stateSVGPending:
			out = append(out, Event{Kind: EventHTML, HTML: pending})
			state, pending = stateIdle, ""
		case stateIdle:
			out = append(out, ev)
		}
	}

	return out, hints, nil
}

// localImage returns the image opened by ev if its source is site-local.
func localImage(ev Event) *ast.Image {
	if ev.Kind != EventEnter {
		return nil
	}
	img, ok := ev.Node.(*ast.Image)
	if !ok || !bytes.HasPrefix(img.Destination, []byte("/")) {
		return nil
	}
	return img
}

// inline returns the SVG markup for img when it qualifies for inlining.
func (t *MarkdownTransformer) inline(img *ast.Image) (string, bool, error) {
	if !t.settings.InlineSVG || !bytes.HasSuffix(img.Destination, []byte(".svg")) {
		return "", false, nil
	}

	name, err := staticPath(string(img.Destination[1:]))
	if err != nil {
		return "", false, err
	}
	size, err := fileSize(t.static, name)
	if err != nil {
		return "", false, err
	}
	if size > t.settings.MaxInlineSize {
		return "", false, nil
	}

	svg, err := InlineSVG(t.static, name, html.EscapeString(titleText(img.Title)))
	if err != nil {
		return "", false, err
	}
	return svg, true, nil
}

// titleText resolves backslash escapes and character references in a raw
// link title.
func titleText(raw []byte) string {
	b := util.UnescapePunctuations(raw)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}

// staticPath percent-decodes an image source into a path under the static directory.
func staticPath(src string) (string, error) {
	name, err := url.PathUnescape(src)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrImagePath, src, err)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: %w: %q", ErrImagePath, ErrInvalidUTF8, src)
	}
	if err := assets.ValidateAssetPath(name); err != nil {
		return "", fmt.Errorf("%w: %w", ErrImagePath, err)
	}
	return name, nil
}
