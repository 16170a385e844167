package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/wayfind-dev/wayfind"
	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/locroute"
)

// FileName is the default name of the route table file.
const FileName = "wayfind.json"

// RouteEntry binds one logical key to a concrete path in one language.
type RouteEntry struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Path     string `json:"path"`
}

// File is the parsed route table file.
type File struct {
	// DefaultLanguage is served without a path prefix.
	DefaultLanguage string `json:"defaultLanguage"`

	// SupportedLanguages lists every language routes may use.
	SupportedLanguages []string `json:"supportedLanguages"`

	// Definitions maps logical keys to their payloads. Payloads are kept
	// raw; the file format does not interpret them.
	Definitions map[string]json.RawMessage `json:"definitions"`

	// Routes are the per-language concrete paths.
	Routes []RouteEntry `json:"routes"`

	// path stores where the file was loaded from.
	path string
}

// Load reads the route table from dir/wayfind.json.
func Load(dir string) (*File, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads the route table from the specified path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("C001", err).WithSubject(path)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap("C002", err).WithSubject(path)
	}

	f.path = path
	return &f, nil
}

// Path returns where the file was loaded from.
func (f *File) Path() string {
	return f.path
}

// Validate checks the table and returns every problem found, not just the
// first. Compile-category problems (C02x) are the ones the router would
// silently drop at build time; file-level problems (C01x) make the table
// unusable.
func (f *File) Validate() []*errors.Error {
	var errs []*errors.Error

	if f.DefaultLanguage == "" {
		errs = append(errs, errors.New("C010"))
	} else if !slices.Contains(f.SupportedLanguages, f.DefaultLanguage) {
		errs = append(errs, errors.New("C011").WithSubject(f.DefaultLanguage))
	}
	if len(f.Definitions) == 0 {
		errs = append(errs, errors.New("C012"))
	}

	seen := make(map[string]bool)
	for _, entry := range f.Routes {
		if _, ok := f.Definitions[entry.Key]; !ok {
			errs = append(errs, errors.New("C020").WithSubject(entry.Key))
			continue
		}
		if !slices.Contains(f.SupportedLanguages, entry.Language) {
			errs = append(errs, errors.New("C021").WithSubject(entry.Language))
			continue
		}

		path := locroute.BuildPath(entry.Language, f.DefaultLanguage, entry.Path)
		if seen[path] {
			errs = append(errs, errors.New("C022").WithSubject(path))
			continue
		}
		seen[path] = true
	}

	return errs
}

// Config converts the file into a router configuration. Definitions keep
// their raw JSON payloads.
func (f *File) Config() wayfind.Config {
	defs := make(map[string]any, len(f.Definitions))
	for key, raw := range f.Definitions {
		defs[key] = raw
	}

	routes := make([]locroute.LocaleEntry, 0, len(f.Routes))
	for _, entry := range f.Routes {
		routes = append(routes, locroute.LocaleEntry{
			Key:      entry.Key,
			Language: entry.Language,
			Path:     entry.Path,
		})
	}

	return wayfind.Config{
		DefaultLanguage:    f.DefaultLanguage,
		SupportedLanguages: f.SupportedLanguages,
		Definitions:        defs,
		Routes:             routes,
	}
}
