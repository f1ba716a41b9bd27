package pipeline

import (
	"fmt"
	"html"
	"io"
	"io/fs"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
)

// DefaultStylesheet is used by pages without a stylesheet of their own.
const DefaultStylesheet = "main.css"

// StylesheetResolver writes the stylesheet markup of a page, either a
// <link> to its stylesheet or the stylesheet inlined in a <style> block.
type StylesheetResolver struct {
	static   fs.FS
	index    assets.Index
	settings Settings
}

// NewStylesheetResolver creates a resolver for stylesheets in static.
func NewStylesheetResolver(static fs.FS, index assets.Index, settings Settings) *StylesheetResolver {
	return &StylesheetResolver{static: static, index: index, settings: settings}
}

// StylesheetName returns "{page}.css" if the static directory has one,
// DefaultStylesheet otherwise.
func (r *StylesheetResolver) StylesheetName(page string) string {
	if name := page + ".css"; r.index.Contains(name) {
		return name
	}
	return DefaultStylesheet
}

// Write writes the stylesheet markup for page.
//
// With inlining off, or a stylesheet over the inline limit, a <link> to the
// stylesheet is written. Otherwise its @import statements are hoisted into
// <link> tags, in order, and the remaining CSS is written inline. Each
// <link> to a site-absolute URL pushes a style hint to the front of hints.
func (r *StylesheetResolver) Write(w io.Writer, page string, hints *PreloadList) error {
	name := r.StylesheetName(page)

	inline := r.settings.InlineCSS
	if inline {
		size, err := fileSize(r.static, name)
		if err != nil {
			return err
		}
		inline = size <= r.settings.MaxInlineSize
	}
	if !inline {
		return r.link(w, name, hints)
	}

	src, err := readText(r.static, name)
	if err != nil {
		return err
	}
	css, urls, err := ResolveImports(src)
	if err != nil {
		return fmt.Errorf("%w: %s", err, name)
	}
	for _, u := range urls {
		if err := r.link(w, u, hints); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "<style>%s</style>\n", sanitizeCSS(strings.TrimRight(css, " \t\r\n\f")))
	return err
}

func (r *StylesheetResolver) link(w io.Writer, href string, hints *PreloadList) error {
	if _, err := fmt.Fprintf(w, "<link rel=stylesheet href=\"%s\">\n", html.EscapeString(href)); err != nil {
		return err
	}
	if r.settings.Preload && strings.HasPrefix(href, "/") {
		h, err := NewPreloadHint(href, PreloadStyle)
		if err != nil {
			return err
		}
		hints.Prepend(h)
	}
	return nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}
