package engine

import (
	"net/url"
	"strings"
)

// LocationSpec carries the optional parts of a location being built:
// query values, route parameter values, and a fragment.
type LocationSpec struct {
	Query  map[string]string
	Params map[string]string
	Hash   string
}

// Href builds a navigable location string from a route: parameter
// placeholders in the route's path are substituted from spec.Params, the
// query is encoded in sorted key order, and the fragment is appended.
func (e *Engine) Href(route *Route, spec LocationSpec) string {
	path := fillParams(route.path, spec.Params)

	if len(spec.Query) > 0 {
		q := url.Values{}
		for k, v := range spec.Query {
			q.Set(k, v)
		}
		path += "?" + q.Encode()
	}

	if spec.Hash != "" {
		path += "#" + strings.TrimPrefix(spec.Hash, "#")
	}

	return path
}

// fillParams substitutes ":name" and "*name" segments with values from
// params. Segments without a supplied value keep their placeholder form so
// the omission is visible in the produced href.
func fillParams(pattern string, params map[string]string) string {
	if len(params) == 0 || !strings.ContainsAny(pattern, ":*") {
		return pattern
	}

	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, ":"):
			if v, ok := params[seg[1:]]; ok {
				segments[i] = url.PathEscape(v)
			}
		case strings.HasPrefix(seg, "*"):
			if v, ok := params[seg[1:]]; ok {
				segments[i] = escapeCatchAll(v)
			}
		}
	}
	return strings.Join(segments, "/")
}

// escapeCatchAll escapes a catch-all value segment by segment, preserving
// its internal slashes.
func escapeCatchAll(value string) string {
	parts := strings.Split(value, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
