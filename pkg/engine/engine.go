// Package engine implements the route engine the locale layer is built on:
// registration of concrete routes into a tree, path matching with parameter
// extraction, location building, and navigation against a pluggable history
// implementation.
//
// The engine knows nothing about languages or logical route keys. It deals
// in concrete paths only; the locale layer above decides which concrete
// paths exist.
package engine

import (
	"log/slog"

	"github.com/wayfind-dev/wayfind/pkg/history"
)

// Route is one registered concrete route. Routes are created by Register,
// owned by the engine, and referenced by callers. The render payload is
// opaque to the engine; it is resolved by whatever layer consumes the
// matched route.
type Route struct {
	path    string
	payload any
	parent  *Route
}

// Path returns the concrete path pattern this route was registered under,
// e.g. "/be/blog/:slug".
func (r *Route) Path() string { return r.path }

// Payload returns the render payload attached at registration.
func (r *Route) Payload() any { return r.payload }

// Parent returns the route this route was registered under, or nil for the
// root route.
func (r *Route) Parent() *Route { return r.parent }

// Option configures an Engine.
type Option func(*Engine)

// WithHistory sets the history implementation navigations are delegated to.
func WithHistory(h history.History) Option {
	return func(e *Engine) { e.hist = h }
}

// WithLogger sets the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine holds the route tree and the history it navigates against.
//
// Registration is a startup-time operation; once the route set is built the
// engine is read-only and safe for concurrent use.
type Engine struct {
	root   *Route
	tree   *node
	byPath map[string]*Route
	routes []*Route

	hist   history.History
	logger *slog.Logger
}

// New creates an engine. Without options it uses an in-memory history
// starting at "/" and the default slog logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		tree:   newNode(""),
		byPath: make(map[string]*Route),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.hist == nil {
		e.hist = history.NewMemory("/")
	}
	e.root = &Route{path: "/"}
	return e
}

// Root returns the root route under which concrete routes are registered.
func (e *Engine) Root() *Route { return e.root }

// Register adds a concrete route with the given path and render payload
// under parent. The path is interpreted relative to the parent's path;
// registering under the root uses it as-is.
//
// Registering an already-registered path returns the existing route
// unchanged: the first registration wins.
func (e *Engine) Register(parent *Route, path string, payload any) *Route {
	if parent == nil {
		parent = e.root
	}
	full := joinPaths(parent.path, path)
	if existing, ok := e.byPath[full]; ok {
		return existing
	}

	rt := &Route{path: full, payload: payload, parent: parent}
	leaf := e.tree.insert(full)
	if leaf.route == nil {
		leaf.route = rt
	}
	e.byPath[full] = rt
	e.routes = append(e.routes, rt)
	e.logger.Debug("route registered", "path", full)
	return rt
}

// Lookup returns the route registered under the exact path pattern.
func (e *Engine) Lookup(path string) (*Route, bool) {
	rt, ok := e.byPath[path]
	return rt, ok
}

// Routes returns all registered routes in registration order.
func (e *Engine) Routes() []*Route {
	return append([]*Route(nil), e.routes...)
}

// Match matches a concrete location path against the route tree and
// extracts parameter values. Parameter segments are percent-decoded.
func (e *Engine) Match(path string) (*Route, map[string]string, bool) {
	params := make(map[string]string)
	leaf, ok := e.tree.match(splitPath(path), params)
	if !ok {
		return nil, nil, false
	}
	return leaf.route, params, true
}

// joinPaths joins a child path onto a parent path. Both are expected to
// start with "/" except the empty string.
func joinPaths(parent, child string) string {
	if parent == "" || parent == "/" {
		if child == "" {
			return "/"
		}
		return child
	}
	if child == "" || child == "/" {
		return parent
	}
	return parent + child
}
