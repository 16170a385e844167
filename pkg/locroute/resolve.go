package locroute

import (
	"github.com/wayfind-dev/wayfind/pkg/engine"
)

// Resolve translates a (key, language) pair into the compiled engine route.
//
// Resolution fails fast on an unknown key, then scans for the first locale
// entry matching both key and language, rebuilds its concrete path with
// BuildPath, and looks the path up in the compiled index. The last step can
// still miss: an entry whose language was unsupported at compile time was
// never registered, and that is a legitimate not-found rather than an
// error.
func (t *Table) Resolve(key, language string) (*engine.Route, bool) {
	if _, ok := t.reg.Definition(key); !ok {
		return nil, false
	}

	entry, ok := t.reg.Entry(key, language)
	if !ok {
		return nil, false
	}

	path := BuildPath(entry.Language, t.reg.Languages().Default(), entry.Path)
	rt, ok := t.byPath[path]
	return rt, ok
}
