// Package routepath canonicalizes request paths before route matching.
package routepath

import (
	"errors"
	"strings"
)

// Result is a canonicalized request path.
type Result struct {
	// Path is the canonical path, without query.
	Path string

	// Query is the raw query without the leading "?".
	Query string

	// Changed reports whether Path differs from the input path.
	Changed bool
}

// URL returns the path with its query appended.
func (r Result) URL() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// Canonicalization errors.
var (
	ErrBackslash            = errors.New("path contains backslash")
	ErrNullByte             = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrEscapesRoot          = errors.New("path escapes root via ..")
)

// Canonicalize normalizes a request path. Repeated slashes collapse, "."
// segments are dropped, ".." segments are resolved and the trailing slash
// is removed from every path but "/". A query string is split off and kept
// as is.
//
// Backslashes, NUL bytes, malformed percent escapes and ".." above the root
// are rejected.
func Canonicalize(input string) (Result, error) {
	if input == "" {
		return Result{Path: "/", Changed: true}, nil
	}

	p, query, _ := strings.Cut(input, "?")
	if err := check(p); err != nil {
		return Result{}, err
	}

	var segs []string
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segs) == 0 {
				return Result{}, ErrEscapesRoot
			}
			segs = segs[:len(segs)-1]
		default:
			segs = append(segs, seg)
		}
	}

	canonical := "/" + strings.Join(segs, "/")
	return Result{
		Path:    canonical,
		Query:   query,
		Changed: canonical != p,
	}, nil
}

func check(p string) error {
	if strings.Contains(p, `\`) {
		return ErrBackslash
	}
	if strings.Contains(p, "\x00") || strings.Contains(strings.ToUpper(p), "%00") {
		return ErrNullByte
	}
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		if i+2 >= len(p) || !isHex(p[i+1]) || !isHex(p[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
