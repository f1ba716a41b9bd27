package pipeline

import (
	"fmt"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// Minifier shrinks a complete HTML document.
type Minifier interface {
	Minify(doc []byte) ([]byte, error)
}

// MinifierFunc adapts a function to the Minifier interface.
type MinifierFunc func(doc []byte) ([]byte, error)

// Minify calls f(doc).
func (f MinifierFunc) Minify(doc []byte) ([]byte, error) {
	return f(doc)
}

// NopMinifier returns documents unchanged.
var NopMinifier = MinifierFunc(func(doc []byte) ([]byte, error) { return doc, nil })

// HTMLMinifier minifies HTML documents, including their inline <style>
// and <script> content.
type HTMLMinifier struct {
	m *minify.M
}

// NewHTMLMinifier creates an HTMLMinifier. Inline SVG is left as written.
func NewHTMLMinifier() *HTMLMinifier {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`), js.Minify)
	return &HTMLMinifier{m: m}
}

// Minify implements Minifier.
func (h *HTMLMinifier) Minify(doc []byte) ([]byte, error) {
	out, err := h.m.Bytes("text/html", doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMinify, err)
	}
	return out, nil
}

// MinifyCSS minifies a standalone stylesheet.
func MinifyCSS(src []byte) ([]byte, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	out, err := m.Bytes("text/css", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMinify, err)
	}
	return out, nil
}
