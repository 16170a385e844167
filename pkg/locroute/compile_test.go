package locroute

import (
	"strings"
	"testing"

	"github.com/wayfind-dev/wayfind/pkg/engine"
)

func testRegistry() *Registry {
	return NewRegistry(
		[]Definition{
			{Key: "home", Render: "home-page"},
			{Key: "about", Render: "about-page"},
		},
		[]LocaleEntry{
			{Key: "home", Language: "en", Path: "/"},
			{Key: "home", Language: "be", Path: "/"},
			{Key: "about", Language: "en", Path: "/about"},
			{Key: "about", Language: "be", Path: "/over-ons"},
		},
		Languages{Default: "en", Supported: []string{"en", "be"}},
	)
}

func TestCompileRegistersAllUsableEntries(t *testing.T) {
	eng := engine.New()
	table := Compile(testRegistry(), eng, eng.Root())

	if len(table.Routes()) != 4 {
		t.Fatalf("compiled %d routes, want 4", len(table.Routes()))
	}
	if len(table.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics: %v", table.Diagnostics())
	}

	want := []string{"/", "/be", "/about", "/be/over-ons"}
	for i, rt := range table.Routes() {
		if rt.Path() != want[i] {
			t.Errorf("route %d path = %q, want %q", i, rt.Path(), want[i])
		}
	}

	rt, ok := table.Route("/be/over-ons")
	if !ok {
		t.Fatal("expected /be/over-ons in the path index")
	}
	if rt.Payload() != "about-page" {
		t.Errorf("payload = %v, want about-page", rt.Payload())
	}
}

func TestCompileDropsMissingDefinition(t *testing.T) {
	reg := NewRegistry(
		[]Definition{{Key: "home"}},
		[]LocaleEntry{
			{Key: "home", Language: "en", Path: "/"},
			{Key: "ghost", Language: "en", Path: "/ghost"},
		},
		Languages{Default: "en", Supported: []string{"en"}},
	)
	eng := engine.New()
	table := Compile(reg, eng, eng.Root())

	if len(table.Routes()) != 1 {
		t.Fatalf("compiled %d routes, want 1", len(table.Routes()))
	}
	diags := table.Diagnostics()
	if len(diags) != 1 || diags[0].Reason != DropMissingDefinition {
		t.Fatalf("diagnostics = %v, want one missing_definition", diags)
	}
	if diags[0].Entry.Key != "ghost" {
		t.Errorf("diagnostic entry key = %q, want ghost", diags[0].Entry.Key)
	}
}

func TestCompileDropsUnsupportedLanguage(t *testing.T) {
	reg := NewRegistry(
		[]Definition{{Key: "home"}},
		[]LocaleEntry{
			{Key: "home", Language: "en", Path: "/"},
			{Key: "home", Language: "fr", Path: "/"},
		},
		Languages{Default: "en", Supported: []string{"en", "be"}},
	)
	eng := engine.New()
	table := Compile(reg, eng, eng.Root())

	if len(table.Routes()) != 1 {
		t.Fatalf("compiled %d routes, want 1", len(table.Routes()))
	}
	diags := table.Diagnostics()
	if len(diags) != 1 || diags[0].Reason != DropUnsupportedLanguage {
		t.Fatalf("diagnostics = %v, want one unsupported_language", diags)
	}
}

func TestCompileDropsDuplicatePath(t *testing.T) {
	reg := NewRegistry(
		[]Definition{{Key: "home", Render: "first"}, {Key: "start", Render: "second"}},
		[]LocaleEntry{
			{Key: "home", Language: "en", Path: "/"},
			{Key: "start", Language: "en", Path: "/"},
		},
		Languages{Default: "en", Supported: []string{"en"}},
	)
	eng := engine.New()
	table := Compile(reg, eng, eng.Root())

	if len(table.Routes()) != 1 {
		t.Fatalf("compiled %d routes, want 1", len(table.Routes()))
	}
	diags := table.Diagnostics()
	if len(diags) != 1 || diags[0].Reason != DropDuplicatePath {
		t.Fatalf("diagnostics = %v, want one duplicate_path", diags)
	}

	// First registration wins.
	rt, _ := table.Route("/")
	if rt.Payload() != "first" {
		t.Errorf("payload = %v, want first", rt.Payload())
	}
}

func TestResolve(t *testing.T) {
	eng := engine.New()
	table := Compile(testRegistry(), eng, eng.Root())

	tests := []struct {
		key, language string
		wantPath      string
		wantOK        bool
	}{
		{"home", "en", "/", true},
		{"home", "be", "/be", true},
		{"about", "en", "/about", true},
		{"about", "be", "/be/over-ons", true},
		{"about", "fr", "", false}, // language not configured
		{"missing", "en", "", false},
	}

	for _, tt := range tests {
		rt, ok := table.Resolve(tt.key, tt.language)
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q, %q) ok = %v, want %v", tt.key, tt.language, ok, tt.wantOK)
			continue
		}
		if ok && rt.Path() != tt.wantPath {
			t.Errorf("Resolve(%q, %q).Path() = %q, want %q", tt.key, tt.language, rt.Path(), tt.wantPath)
		}
	}
}

func TestResolveDroppedEntryMisses(t *testing.T) {
	// The entry exists in the registry but its language was unsupported
	// at compile time, so resolution finds the entry and then misses the
	// compiled index.
	reg := NewRegistry(
		[]Definition{{Key: "home"}},
		[]LocaleEntry{{Key: "home", Language: "fr", Path: "/"}},
		Languages{Default: "en", Supported: []string{"en"}},
	)
	eng := engine.New()
	table := Compile(reg, eng, eng.Root())

	if _, ok := table.Resolve("home", "fr"); ok {
		t.Error("Resolve of a compile-time-dropped entry must miss")
	}
}

func TestResolveFirstEntryWins(t *testing.T) {
	reg := NewRegistry(
		[]Definition{{Key: "home"}},
		[]LocaleEntry{
			{Key: "home", Language: "en", Path: "/first"},
			{Key: "home", Language: "en", Path: "/second"},
		},
		Languages{Default: "en", Supported: []string{"en"}},
	)
	eng := engine.New()
	table := Compile(reg, eng, eng.Root())

	rt, ok := table.Resolve("home", "en")
	if !ok || rt.Path() != "/first" {
		t.Errorf("Resolve = %v, want the first matching entry's route", rt)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Diagnostics: []Diagnostic{
		{Entry: LocaleEntry{Key: "ghost", Language: "en", Path: "/g"}, Reason: DropMissingDefinition},
	}}

	msg := err.Error()
	for _, want := range []string{"1 route entries dropped", "ghost", "missing_definition"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
