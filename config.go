package wayfind

import (
	"log/slog"

	"github.com/wayfind-dev/wayfind/pkg/engine"
	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/locroute"
)

// Config is the static configuration a Router is built from. It is read
// once by New; later mutation has no effect on the router.
type Config struct {
	// DefaultLanguage is the language whose routes carry no path prefix.
	DefaultLanguage string

	// SupportedLanguages is the ordered set of supported language tags.
	// The default language need not appear here; it behaves as
	// unprefixed regardless.
	SupportedLanguages []string

	// Definitions maps logical route keys to their render payloads. The
	// payload is opaque to wayfind and is returned untouched on the
	// resolved route.
	Definitions map[string]any

	// Routes lists the locale entries in registration order.
	Routes []locroute.LocaleEntry

	// Engine, when set, is the route engine to register routes into and
	// navigate through. When nil, New creates one backed by History.
	Engine *engine.Engine

	// Root is the route under which compiled routes are registered.
	// Defaults to the engine's root route.
	Root *engine.Route

	// History is the history implementation for the default engine.
	// Ignored when Engine is set (the engine owns its history). Defaults
	// to an in-memory history starting at "/".
	History history.History

	// Logger receives compile warnings and navigation debug logs.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Strict makes New fail with a *locroute.ConfigError when any locale
	// entry is dropped during compilation.
	Strict bool

	// Middleware wraps Navigate, outermost first. Middleware observes
	// every Navigate call, including ones rejected by resolution.
	Middleware []Middleware
}
