package wayfind

import (
	"context"

	"github.com/wayfind-dev/wayfind/pkg/engine"
)

// Target selects a route by logical key and language.
type Target struct {
	Key      string
	Language string
}

// Method selects how a navigation manipulates the history stack.
type Method string

const (
	// MethodPush appends a new history entry. The zero Method value is
	// treated as push.
	MethodPush Method = "push"

	// MethodReplace swaps the current history entry.
	MethodReplace Method = "replace"
)

// Navigation describes one navigation request.
type Navigation struct {
	// To is the destination route. Required.
	To Target

	// From, when set, asserts the route the caller believes is current.
	// It must resolve; its concrete path travels with the navigation.
	From *Target

	// Query, Params, and Hash are applied when building the destination
	// location, exactly as in Href.
	Query  map[string]string
	Params map[string]string
	Hash   string

	// Method selects push or replace semantics. Defaults to push.
	Method Method

	// State is attached to the resulting history entry.
	State any
}

// NavigateFunc is the navigation delegate middleware wraps.
type NavigateFunc func(ctx context.Context, nav Navigation) error

// Middleware wraps a NavigateFunc, observing or altering navigations.
type Middleware func(next NavigateFunc) NavigateFunc

// HrefOption applies an optional location part when building an href.
type HrefOption func(*engine.LocationSpec)

// WithQuery adds query values to the built location.
func WithQuery(query map[string]string) HrefOption {
	return func(spec *engine.LocationSpec) { spec.Query = query }
}

// WithParams supplies values for the route's parameter placeholders.
func WithParams(params map[string]string) HrefOption {
	return func(spec *engine.LocationSpec) { spec.Params = params }
}

// WithHash sets the fragment of the built location.
func WithHash(hash string) HrefOption {
	return func(spec *engine.LocationSpec) { spec.Hash = hash }
}
