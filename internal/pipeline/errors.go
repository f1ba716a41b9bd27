package pipeline

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for compilation stages.
var (
	// ErrRead indicates a source or asset file could not be read or stat'ed.
	ErrRead = errors.New("failed to read file")

	// ErrInvalidUTF8 indicates file content is not valid UTF-8.
	ErrInvalidUTF8 = fileutil.ErrInvalidUTF8

	// ErrImagePath indicates a local image source could not be decoded
	// into a path inside the static directory.
	ErrImagePath = errors.New("invalid image path")

	// ErrCSSParse indicates the tokenizer failed inside an @import statement.
	ErrCSSParse = errors.New("CSS parse error")

	// ErrSVGAnchorNotFound indicates an SVG file has no <svg ...> opening
	// tag to attach a title to.
	ErrSVGAnchorNotFound = errors.New("SVG anchor not found")

	// ErrHeaderValue indicates a preload hint is not a legal header value.
	ErrHeaderValue = errors.New("invalid header value")

	// ErrRender indicates the event stream could not be rendered to HTML.
	ErrRender = errors.New("HTML rendering failed")

	// ErrMinify indicates the minifier rejected the document.
	ErrMinify = errors.New("minification failed")
)
