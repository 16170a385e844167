// Package routepath normalizes and validates location paths before they are
// handed to the history layer. Locale-prefixed paths produced by the route
// compiler are expected to be pre-normalized; canonicalization here guards
// the navigation entry points, where paths can come from application code.
package routepath

import (
	"errors"
	"net/url"
	"strings"
)

// Result contains the outcome of canonicalizing a path.
type Result struct {
	// Path is the canonicalized path without the query string.
	Path string

	// Query is the query string without the leading "?".
	Query string

	// Changed reports whether canonicalization modified the path.
	Changed bool
}

// Canonicalization errors.
var (
	ErrInvalidPath           = errors.New("invalid path")
	ErrBackslashInPath       = errors.New("path contains backslash")
	ErrNullByteInPath        = errors.New("path contains null byte")
	ErrInvalidPercentEscape  = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot       = errors.New("path escapes root via ..")
	ErrEncodedSlashInSegment = errors.New("encoded slash (%2F) in path segment")
)

// Canonicalize normalizes a location path:
//
//   - ensures a leading slash
//   - collapses duplicate slashes
//   - removes "." segments and resolves ".." segments
//   - removes the trailing slash (except for the root path)
//
// Paths containing a backslash, a NUL byte (literal or encoded), an invalid
// percent-escape, or a ".." that would climb above the root are rejected.
// A query string, if present, is split off and preserved untouched.
func Canonicalize(input string) (Result, error) {
	if input == "" {
		return Result{Path: "/", Changed: true}, nil
	}

	path, query, _ := strings.Cut(input, "?")

	if strings.Contains(path, "\\") {
		return Result{}, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return Result{}, ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return Result{}, err
		}
	}

	original := path

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	var kept []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(kept) == 0 {
				return Result{}, ErrPathEscapesRoot
			}
			kept = kept[:len(kept)-1]
		default:
			kept = append(kept, seg)
		}
	}

	path = "/" + strings.Join(kept, "/")
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}

	return Result{
		Path:    path,
		Query:   query,
		Changed: path != original,
	}, nil
}

// ValidateNavPath canonicalizes a navigation target and rejects anything
// that is not a relative path. Absolute URLs (http://, https://, and
// protocol-relative //) are refused to prevent open redirects through the
// navigation layer. The returned path keeps its query string.
func ValidateNavPath(path string) (string, error) {
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "//") {
		return "", ErrInvalidPath
	}
	if !strings.HasPrefix(path, "/") {
		return "", ErrInvalidPath
	}

	result, err := Canonicalize(path)
	if err != nil {
		return "", err
	}
	if result.Query != "" {
		return result.Path + "?" + result.Query, nil
	}
	return result.Path, nil
}

// DecodeSegment decodes a single path segment. For single-segment
// parameters, a decoded "/" (an encoded %2F in the input) is rejected as a
// path smuggling attempt; catch-all parameters may span segments and keep
// their slashes.
func DecodeSegment(segment string, catchAll bool) (string, error) {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return "", ErrInvalidPercentEscape
	}
	if !catchAll && strings.Contains(decoded, "/") {
		return "", ErrEncodedSlashInSegment
	}
	return decoded, nil
}

// Split splits a location into path and query. The query is returned
// without the leading "?".
func Split(input string) (path, query string) {
	path, query, _ = strings.Cut(input, "?")
	return path, query
}

// validatePercentEscapes checks that every "%" starts a valid %XX escape.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); {
		if path[i] != '%' {
			i++
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 3
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
