package locroute

import (
	"fmt"

	"github.com/wayfind-dev/wayfind/pkg/engine"
)

// DropReason classifies why the compiler skipped a locale entry.
type DropReason string

const (
	// DropMissingDefinition means the entry's key has no definition.
	DropMissingDefinition DropReason = "missing_definition"

	// DropUnsupportedLanguage means the entry's language is not in the
	// supported set.
	DropUnsupportedLanguage DropReason = "unsupported_language"

	// DropDuplicatePath means an earlier entry already produced the same
	// concrete path; the first registration wins.
	DropDuplicatePath DropReason = "duplicate_path"
)

// Diagnostic records one entry the compiler dropped and why. Dropped
// entries are not errors in default mode: a partial configuration still
// compiles, the affected routes are simply unreachable.
type Diagnostic struct {
	Entry  LocaleEntry
	Path   string
	Reason DropReason
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("route entry (key %q, language %q, path %q) dropped: %s",
		d.Entry.Key, d.Entry.Language, d.Entry.Path, d.Reason)
}

// Table is the compiled route table: the engine routes produced from a
// registry, indexed by concrete path for resolution. Immutable after
// Compile.
type Table struct {
	reg    *Registry
	byPath map[string]*engine.Route
	routes []*engine.Route
	diags  []Diagnostic
}

// Compile walks the registry's locale entries in order and registers one
// concrete engine route per usable entry under root. Entries whose key has
// no definition, whose language is unsupported, or whose concrete path was
// already taken are dropped and recorded as diagnostics.
//
// Compile never fails: a misconfigured entry degrades to an unreachable
// route, not a startup error. Callers wanting configuration mistakes to be
// fatal should check Diagnostics (the facade's strict mode does).
func Compile(reg *Registry, eng *engine.Engine, root *engine.Route) *Table {
	t := &Table{
		reg:    reg,
		byPath: make(map[string]*engine.Route),
	}

	langs := reg.Languages()
	for _, entry := range reg.Entries() {
		def, ok := reg.Definition(entry.Key)
		if !ok {
			t.diags = append(t.diags, Diagnostic{Entry: entry, Reason: DropMissingDefinition})
			continue
		}
		if !langs.Contains(entry.Language) {
			t.diags = append(t.diags, Diagnostic{Entry: entry, Reason: DropUnsupportedLanguage})
			continue
		}

		path := BuildPath(entry.Language, langs.Default(), entry.Path)
		if _, taken := t.byPath[path]; taken {
			t.diags = append(t.diags, Diagnostic{Entry: entry, Path: path, Reason: DropDuplicatePath})
			continue
		}

		rt := eng.Register(root, path, def.Render)
		t.byPath[path] = rt
		t.routes = append(t.routes, rt)
	}

	return t
}

// Routes returns the compiled routes in registration order.
func (t *Table) Routes() []*engine.Route {
	return append([]*engine.Route(nil), t.routes...)
}

// Route returns the compiled route registered under the exact concrete
// path.
func (t *Table) Route(path string) (*engine.Route, bool) {
	rt, ok := t.byPath[path]
	return rt, ok
}

// Diagnostics returns the entries dropped during compilation.
func (t *Table) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), t.diags...)
}

// Registry returns the registry this table was compiled from.
func (t *Table) Registry() *Registry {
	return t.reg
}
