package pipeline

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"sync"
)

// svgAttrPattern matches version and xmlns attributes, which are redundant
// once the SVG is embedded in an HTML document.
var svgAttrPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`\s+(version|xmlns)="[^"]+"`)
})

const svgAnchor = "<svg"

// InlineSVG reads the SVG file name from fsys and returns its markup
// prepared for embedding: trailing whitespace trimmed, version and xmlns
// attributes removed, and title injected as a <title> element.
// The title is inserted verbatim; callers escape it.
func InlineSVG(fsys fs.FS, name, title string) (string, error) {
	svg, err := readText(fsys, name)
	if err != nil {
		return "", err
	}
	out, err := InjectTitle(StripSVGAttributes(svg), title)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, name)
	}
	return out, nil
}

// StripSVGAttributes removes every version="..." and xmlns="..." attribute.
func StripSVGAttributes(svg string) string {
	return svgAttrPattern().ReplaceAllString(svg, "")
}

// InjectTitle inserts <title>title</title> right after the first <svg ...>
// opening tag. The document is returned unchanged if title is empty or it
// already has a <title> element.
func InjectTitle(svg, title string) (string, error) {
	if title == "" || strings.Contains(svg, "<title>") {
		return svg, nil
	}

	from := strings.Index(svg, svgAnchor)
	if from == -1 {
		return "", fmt.Errorf("%w: no %s tag", ErrSVGAnchorNotFound, svgAnchor)
	}
	end := strings.IndexByte(svg[from+len(svgAnchor):], '>')
	if end == -1 {
		return "", fmt.Errorf("%w: unterminated %s tag", ErrSVGAnchorNotFound, svgAnchor)
	}
	at := from + len(svgAnchor) + end + 1

	return svg[:at] + "<title>" + title + "</title>" + svg[at:], nil
}
