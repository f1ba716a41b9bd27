package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// importPattern matches every @import url(...) statement, captured or not.
var importPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`@import\s+url\([^\)]+\);?`)
})

// ResolveImports extracts the URLs of @import url("...") statements from
// src in document order and returns src with all @import url(...)
// statements removed.
//
// Only top-level URLs written as CSS strings are returned. An @import
// whose URL is unquoted or built from a function, or that sits inside a
// {} block, is still removed from the output but does not appear in the
// URL list.
func ResolveImports(src string) (string, []string, error) {
	l := css.NewLexer(parse.NewInputString(src))

	var (
		urls     []string
		depth    int
		prevType = css.ErrorToken
		prevData []byte
	)

	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", nil, fmt.Errorf("%w: %v", ErrCSSParse, err)
			}
			return importPattern().ReplaceAllString(src, ""), urls, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		}

		if depth == 0 && isImportKeyword(prevType, prevData) {
			switch {
			case tt == css.URLToken:
				if u, ok := quotedURL(data); ok {
					urls = append(urls, u)
					continue
				}
			case tt == css.BadURLToken && quotedBadURL(data):
				return "", nil, fmt.Errorf("%w: malformed @import %s", ErrCSSParse, data)
			}
		}

		prevType = tt
		prevData = append(prevData[:0], data...)
	}
}

func isImportKeyword(tt css.TokenType, data []byte) bool {
	return tt == css.AtKeywordToken && len(data) > 1 && bytes.EqualFold(data[1:], []byte("import"))
}

// quotedURL returns the string inside url("...") or url('...').
func quotedURL(data []byte) (string, bool) {
	s := string(data)
	if len(s) < len("url()") || !strings.EqualFold(s[:4], "url(") || s[len(s)-1] != ')' {
		return "", false
	}
	inner := strings.TrimSpace(s[4 : len(s)-1])
	if len(inner) < 2 {
		return "", false
	}
	quote := inner[0]
	if (quote != '"' && quote != '\'') || inner[len(inner)-1] != quote {
		return "", false
	}
	return unescapeCSS(inner[1 : len(inner)-1]), true
}

// quotedBadURL reports whether a malformed url() token starts with a
// string, as in url("a.css" screen). A bad unquoted url() is not an error.
func quotedBadURL(data []byte) bool {
	if len(data) < 4 || !bytes.EqualFold(data[:4], []byte("url(")) {
		return false
	}
	rest := bytes.TrimLeft(data[4:], " \t\r\n\f")
	return len(rest) > 0 && (rest[0] == '"' || rest[0] == '\'')
}

// unescapeCSS resolves backslash escapes in the body of a CSS string.
func unescapeCSS(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch {
		case s[i] == '\n':
			// escaped newline is a line continuation
		case isHex(s[i]):
			j := i
			var r rune
			for j < len(s) && j-i < 6 && isHex(s[j]) {
				r = r<<4 | hexValue(s[j])
				j++
			}
			if j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n') {
				j++
			}
			if r == 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
				r = '\uFFFD'
			}
			b.WriteRune(r)
			i = j - 1
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) rune {
	switch {
	case c >= 'a':
		return rune(c-'a') + 10
	case c >= 'A':
		return rune(c-'A') + 10
	default:
		return rune(c - '0')
	}
}
