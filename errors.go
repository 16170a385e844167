package wayfind

import "fmt"

// NavigationError is returned by Navigate when a navigation target does not
// resolve to a registered route. The rejection happens synchronously,
// before anything is delegated to the engine.
type NavigationError struct {
	// Side is "to" or "from", naming which navigation target failed.
	Side string

	// Key and Language identify the pair that did not resolve.
	Key      string
	Language string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("wayfind: cannot navigate: no route for %q target (key %q, language %q)",
		e.Side, e.Key, e.Language)
}
