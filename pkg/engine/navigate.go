package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/routepath"
)

// NavigateOptions controls a navigation delegated to the history layer.
type NavigateOptions struct {
	// Replace swaps the current history entry instead of pushing.
	Replace bool

	// From, when set, names the location the caller believes is current.
	// It travels with the navigation for logging; a mismatch does not
	// fail the navigation.
	From string

	// State is attached to the new history entry.
	State any
}

// Navigate canonicalizes the target location and delegates to the history
// implementation. It blocks until the history acknowledges the operation or
// ctx is done. Absolute URLs and paths escaping the root are rejected.
func (e *Engine) Navigate(ctx context.Context, to string, opts NavigateOptions) error {
	loc, err := routepath.ValidateNavPath(to)
	if err != nil {
		return fmt.Errorf("engine: navigate to %q: %w", to, err)
	}

	e.logger.Debug("navigate", "to", loc, "replace", opts.Replace, "from", opts.From)

	entry := history.Entry{Path: loc, State: opts.State}
	if opts.Replace {
		return e.hist.Replace(ctx, entry)
	}
	return e.hist.Push(ctx, entry)
}

// Location returns the current history entry.
func (e *Engine) Location() history.Entry {
	return e.hist.Location()
}

// CurrentPath returns the pathname of the current location, without query
// string or fragment.
func (e *Engine) CurrentPath() string {
	path, _ := routepath.Split(e.hist.Location().Path)
	if i := strings.Index(path, "#"); i >= 0 {
		path = path[:i]
	}
	return path
}

// Back delegates to the history-back primitive.
func (e *Engine) Back() error {
	return e.hist.Back()
}

// Reload re-activates the current location.
func (e *Engine) Reload() error {
	return e.hist.Reload()
}

// History exposes the engine's history implementation.
func (e *Engine) History() history.History {
	return e.hist
}
