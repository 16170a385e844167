package engine

import (
	"strings"

	"github.com/wayfind-dev/wayfind/pkg/routepath"
)

// node is one path segment in the route tree.
type node struct {
	// segment is the static segment this node matches.
	segment string

	// isParam / isCatchAll mark dynamic nodes; paramName is the name
	// without the : or * sigil.
	isParam    bool
	isCatchAll bool
	paramName  string

	// route is the registered route terminating at this node, if any.
	route *Route

	children      []*node
	paramChild    *node
	catchAllChild *node
}

func newNode(segment string) *node {
	return &node{segment: segment}
}

func (n *node) findChild(segment string) *node {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

func (n *node) addChild(segment string) *node {
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := newNode(segment)
	n.children = append(n.children, child)
	return child
}

func (n *node) addParamChild(name string) *node {
	if n.paramChild != nil {
		return n.paramChild
	}
	child := newNode("")
	child.isParam = true
	child.paramName = name
	n.paramChild = child
	return child
}

func (n *node) addCatchAllChild(name string) *node {
	if n.catchAllChild != nil {
		return n.catchAllChild
	}
	child := newNode("")
	child.isCatchAll = true
	child.paramName = name
	n.catchAllChild = child
	return child
}

// insert walks or creates the node chain for a path pattern and returns the
// leaf node. Parameter segments use ":name", catch-all segments "*name";
// a catch-all consumes the rest of the pattern.
func (n *node) insert(pattern string) *node {
	current := n
	for _, seg := range splitPath(pattern) {
		switch {
		case strings.HasPrefix(seg, "*"):
			return current.addCatchAllChild(seg[1:])
		case strings.HasPrefix(seg, ":"):
			current = current.addParamChild(seg[1:])
		default:
			current = current.addChild(seg)
		}
	}
	return current
}

// match finds a registered leaf for the given path segments, filling params
// along the way. Static children are preferred over parameter children,
// with backtracking when a deeper static match fails.
func (n *node) match(segments []string, params map[string]string) (*node, bool) {
	if len(segments) == 0 {
		if n.route != nil {
			return n, true
		}
		return nil, false
	}

	segment := segments[0]
	remaining := segments[1:]

	if child := n.findChild(segment); child != nil {
		if leaf, ok := child.match(remaining, params); ok {
			return leaf, true
		}
	}

	if n.paramChild != nil {
		if decoded, err := routepath.DecodeSegment(segment, false); err == nil {
			params[n.paramChild.paramName] = decoded
			if leaf, ok := n.paramChild.match(remaining, params); ok {
				return leaf, true
			}
			// Backtrack on failure.
			delete(params, n.paramChild.paramName)
		}
	}

	if n.catchAllChild != nil && n.catchAllChild.route != nil {
		remainder := strings.Join(segments, "/")
		if decoded, err := routepath.DecodeSegment(remainder, true); err == nil {
			params[n.catchAllChild.paramName] = decoded
			return n.catchAllChild, true
		}
	}

	return nil, false
}

// splitPath splits a path into its segments. The root path has none.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
