package locroute

import (
	"github.com/wayfind-dev/wayfind/pkg/lang"
)

// Definition binds a logical route key to its render payload. The payload
// is opaque to the routing layer; it is handed back untouched when the
// route is resolved.
type Definition struct {
	Key    string
	Render any
}

// LocaleEntry binds a definition key and a language to a raw path template.
// Templates may contain ":param" and "*rest" placeholders understood by the
// engine.
type LocaleEntry struct {
	Key      string
	Language string
	Path     string
}

// Languages is the language configuration: the default (unprefixed)
// language and the ordered set of supported languages. The default need not
// appear in the supported set.
type Languages struct {
	Default   string
	Supported []string
}

// Registry is the static route configuration: definitions, locale entries,
// and the language set. It is immutable after construction and safe for
// concurrent reads.
type Registry struct {
	defs    map[string]Definition
	entries []LocaleEntry
	langs   *lang.Set
}

// NewRegistry builds a registry. Duplicate definition keys keep the first
// occurrence.
func NewRegistry(defs []Definition, entries []LocaleEntry, languages Languages) *Registry {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		if _, ok := m[d.Key]; !ok {
			m[d.Key] = d
		}
	}
	return &Registry{
		defs:    m,
		entries: append([]LocaleEntry(nil), entries...),
		langs:   lang.NewSet(languages.Default, languages.Supported),
	}
}

// Definition returns the definition for a logical key.
func (r *Registry) Definition(key string) (Definition, bool) {
	d, ok := r.defs[key]
	return d, ok
}

// Entry returns the first locale entry matching key and language.
func (r *Registry) Entry(key, language string) (LocaleEntry, bool) {
	for _, e := range r.entries {
		if e.Key == key && e.Language == language {
			return e, true
		}
	}
	return LocaleEntry{}, false
}

// Entries returns a copy of the locale entries in registration order.
func (r *Registry) Entries() []LocaleEntry {
	return append([]LocaleEntry(nil), r.entries...)
}

// Languages returns the registry's language set.
func (r *Registry) Languages() *lang.Set {
	return r.langs
}
