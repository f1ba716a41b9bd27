package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// PreloadKind is the "as" attribute of a preload hint.
type PreloadKind string

// Preload kinds.
const (
	PreloadStyle  PreloadKind = "style"
	PreloadScript PreloadKind = "script"
	PreloadImage  PreloadKind = "image"
)

// PreloadHint is one resource to announce in a Link header.
// Path is relative to the site root and carries no leading slash.
type PreloadHint struct {
	Path string
	Kind PreloadKind
}

// NewPreloadHint builds a hint for path, dropping one leading slash.
// The hint is validated as a header value.
func NewPreloadHint(path string, kind PreloadKind) (PreloadHint, error) {
	h := PreloadHint{Path: strings.TrimPrefix(path, "/"), Kind: kind}
	if err := h.Validate(); err != nil {
		return PreloadHint{}, err
	}
	return h, nil
}

// Value renders the hint as a Link header value.
func (h PreloadHint) Value() string {
	return "</" + h.Path + ">; rel=preload; as=" + string(h.Kind)
}

// Validate reports whether Value is a legal HTTP header field value.
func (h PreloadHint) Validate() error {
	if !httpguts.ValidHeaderFieldValue(h.Value()) {
		return fmt.Errorf("%w: %q", ErrHeaderValue, h.Value())
	}
	return nil
}

// PreloadList is an ordered list of hints. Stages either push a hint to
// the front or append it, and the final order is the Link header order.
type PreloadList struct {
	hints []PreloadHint
}

// NewPreloadList returns a list seeded with hints, in order.
func NewPreloadList(hints ...PreloadHint) *PreloadList {
	return &PreloadList{hints: append([]PreloadHint(nil), hints...)}
}

// Prepend inserts h before every hint already in the list.
func (l *PreloadList) Prepend(h PreloadHint) {
	l.hints = append(l.hints, PreloadHint{})
	copy(l.hints[1:], l.hints)
	l.hints[0] = h
}

// Append adds h after every hint already in the list.
func (l *PreloadList) Append(h PreloadHint) {
	l.hints = append(l.hints, h)
}

// Len returns the number of hints.
func (l *PreloadList) Len() int {
	return len(l.hints)
}

// Hints returns a copy of the hints in order.
func (l *PreloadList) Hints() []PreloadHint {
	return append([]PreloadHint(nil), l.hints...)
}

// Values returns the Link header values in order.
func (l *PreloadList) Values() []string {
	values := make([]string, len(l.hints))
	for i, h := range l.hints {
		values[i] = h.Value()
	}
	return values
}
