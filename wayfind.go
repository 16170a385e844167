// Package wayfind is a locale-aware routing layer. Application code refers
// to routes by a stable logical key plus a language tag, never by a literal
// path string; wayfind resolves the pair to a concrete, language-prefixed
// path, builds hrefs, and drives navigation through the underlying route
// engine.
//
// Create a Router once from a Config and inject it wherever navigation is
// needed:
//
//	router, err := wayfind.New(wayfind.Config{
//	    DefaultLanguage:    "en",
//	    SupportedLanguages: []string{"en", "be"},
//	    Definitions: map[string]any{
//	        "home":  homePage,
//	        "about": aboutPage,
//	    },
//	    Routes: []locroute.LocaleEntry{
//	        {Key: "home", Language: "en", Path: "/"},
//	        {Key: "home", Language: "be", Path: "/"},
//	        {Key: "about", Language: "en", Path: "/about"},
//	        {Key: "about", Language: "be", Path: "/over-ons"},
//	    },
//	})
//
//	router.Path("about", "be")        // "/be/over-ons"
//	router.Navigate(ctx, wayfind.Navigation{To: wayfind.Target{Key: "about", Language: "be"}})
//
// Routes in the default language keep their raw paths; every other
// supported language gets a "/<language>" prefix. Lookups that cannot be
// resolved return the zero value ("" or false); only Navigate reports the
// failure as an error.
package wayfind

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/wayfind-dev/wayfind/pkg/engine"
	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/locroute"
)

// Router is the facade over the compiled route table and the route engine.
// It is immutable after New and safe for concurrent use.
type Router struct {
	table    *locroute.Table
	eng      *engine.Engine
	logger   *slog.Logger
	navigate NavigateFunc
}

// New compiles the configured route table and returns the router facade.
//
// In default mode a misconfigured entry (unknown key, unsupported language,
// duplicate concrete path) is logged and dropped, leaving the route
// unreachable. With Config.Strict set, any dropped entry turns into a
// *locroute.ConfigError.
func New(cfg Config) (*Router, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	eng := cfg.Engine
	if eng == nil {
		hist := cfg.History
		if hist == nil {
			hist = history.NewMemory("/")
		}
		eng = engine.New(engine.WithHistory(hist), engine.WithLogger(logger))
	}
	root := cfg.Root
	if root == nil {
		root = eng.Root()
	}

	defs := make([]locroute.Definition, 0, len(cfg.Definitions))
	for key, render := range cfg.Definitions {
		defs = append(defs, locroute.Definition{Key: key, Render: render})
	}
	reg := locroute.NewRegistry(defs, cfg.Routes, locroute.Languages{
		Default:   cfg.DefaultLanguage,
		Supported: cfg.SupportedLanguages,
	})

	table := locroute.Compile(reg, eng, root)
	if diags := table.Diagnostics(); len(diags) > 0 {
		if cfg.Strict {
			return nil, &locroute.ConfigError{Diagnostics: diags}
		}
		for _, d := range diags {
			logger.Warn("route entry dropped",
				"key", d.Entry.Key,
				"language", d.Entry.Language,
				"path", d.Entry.Path,
				"reason", string(d.Reason))
		}
	}

	r := &Router{
		table:  table,
		eng:    eng,
		logger: logger,
	}

	nav := NavigateFunc(r.doNavigate)
	for i := len(cfg.Middleware) - 1; i >= 0; i-- {
		nav = cfg.Middleware[i](nav)
	}
	r.navigate = nav

	return r, nil
}

// Path returns the concrete path for a (key, language) pair, or "" when the
// pair does not resolve. Callers that need to tell "not found" apart from a
// legitimately empty path should use HasRoute.
func (r *Router) Path(key, language string) string {
	rt, ok := r.table.Resolve(key, language)
	if !ok {
		return ""
	}
	return rt.Path()
}

// HasRoute reports whether a (key, language) pair resolves to a registered
// route.
func (r *Router) HasRoute(key, language string) bool {
	_, ok := r.table.Resolve(key, language)
	return ok
}

// IsActive reports whether the current location's pathname exactly equals
// the concrete path of the (key, language) route. Unresolvable pairs are
// never active.
func (r *Router) IsActive(key, language string) bool {
	p := r.Path(key, language)
	if p == "" {
		return false
	}
	return p == r.eng.CurrentPath()
}

// Href builds a navigable location for a (key, language) pair, applying the
// optional query, parameter, and hash parts. Returns "" when the pair does
// not resolve.
func (r *Router) Href(key, language string, opts ...HrefOption) string {
	rt, ok := r.table.Resolve(key, language)
	if !ok {
		return ""
	}
	var spec engine.LocationSpec
	for _, opt := range opts {
		opt(&spec)
	}
	return r.eng.Href(rt, spec)
}

// Relative is an alias of Href.
func (r *Router) Relative(key, language string, opts ...HrefOption) string {
	return r.Href(key, language, opts...)
}

// Absolute joins an href onto a base URL with exactly one separating slash,
// regardless of whether the base ends with "/" or the href starts with one.
// When the pair does not resolve, the result is the base URL plus "/";
// callers needing to distinguish that should check HasRoute first.
func (r *Router) Absolute(baseURL, key, language string, opts ...HrefOption) string {
	href := r.Href(key, language, opts...)
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

// Navigate resolves the navigation's targets and delegates to the engine.
// It returns a *NavigationError without touching the engine when To (or
// From, if supplied) does not resolve; errors from the engine or the
// history layer are propagated unchanged.
func (r *Router) Navigate(ctx context.Context, nav Navigation) error {
	return r.navigate(ctx, nav)
}

func (r *Router) doNavigate(ctx context.Context, nav Navigation) error {
	to, ok := r.table.Resolve(nav.To.Key, nav.To.Language)
	if !ok {
		return &NavigationError{Side: "to", Key: nav.To.Key, Language: nav.To.Language}
	}

	var from string
	if nav.From != nil {
		f, ok := r.table.Resolve(nav.From.Key, nav.From.Language)
		if !ok {
			return &NavigationError{Side: "from", Key: nav.From.Key, Language: nav.From.Language}
		}
		from = f.Path()
	}

	loc := r.eng.Href(to, engine.LocationSpec{
		Query:  nav.Query,
		Params: nav.Params,
		Hash:   nav.Hash,
	})

	return r.eng.Navigate(ctx, loc, engine.NavigateOptions{
		Replace: nav.Method == MethodReplace,
		From:    from,
		State:   nav.State,
	})
}

// Reload forces a reload of the current location.
func (r *Router) Reload() error {
	return r.eng.Reload()
}

// GoBack delegates to the engine's history-back primitive.
func (r *Router) GoBack() error {
	return r.eng.Back()
}

// ActiveQuery returns the parsed query values of the current location.
func (r *Router) ActiveQuery() url.Values {
	_, query := splitLocation(r.eng.Location().Path)
	vals, err := url.ParseQuery(query)
	if err != nil {
		return url.Values{}
	}
	return vals
}

// ActiveParams returns the route parameters extracted from the current
// location when the (key, language) route is the one currently matched,
// and nil otherwise.
func (r *Router) ActiveParams(key, language string) map[string]string {
	rt, ok := r.table.Resolve(key, language)
	if !ok {
		return nil
	}
	matched, params, ok := r.eng.Match(r.eng.CurrentPath())
	if !ok || matched != rt {
		return nil
	}
	return params
}

// MatchLanguage returns the configured language best matching an
// Accept-Language header, falling back to the default language.
func (r *Router) MatchLanguage(acceptLanguage string) string {
	return r.table.Registry().Languages().Match(acceptLanguage)
}

// Routes returns the compiled routes in registration order.
func (r *Router) Routes() []*engine.Route {
	return r.table.Routes()
}

// Diagnostics returns the entries dropped during route compilation.
func (r *Router) Diagnostics() []locroute.Diagnostic {
	return r.table.Diagnostics()
}

// Engine returns the underlying route engine.
func (r *Router) Engine() *engine.Engine {
	return r.eng
}

// splitLocation splits a location into pathname and query, discarding a
// trailing fragment from the query.
func splitLocation(location string) (path, query string) {
	path, query, _ = strings.Cut(location, "?")
	if i := strings.Index(query, "#"); i >= 0 {
		query = query[:i]
	}
	return path, query
}
