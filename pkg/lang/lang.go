// Package lang wraps the application's language configuration: the default
// language, the ordered set of supported languages, and best-match selection
// for Accept-Language headers.
//
// Language tags are kept as the caller-supplied strings throughout; BCP 47
// parsing is used only for Accept-Language matching, so an unusual tag in
// the configuration never breaks route resolution.
package lang

import (
	"golang.org/x/text/language"
)

// Set holds one application's language configuration.
type Set struct {
	def       string
	supported []string

	// raw is aligned with the matcher's tag list; raw[0] is the default.
	raw     []string
	matcher language.Matcher
}

// NewSet builds a Set from the default language and the supported list.
// The default need not appear in the supported list.
func NewSet(defaultLang string, supported []string) *Set {
	s := &Set{
		def:       defaultLang,
		supported: append([]string(nil), supported...),
	}

	tags := make([]language.Tag, 0, len(supported)+1)
	add := func(r string) {
		tag, err := language.Parse(r)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
		s.raw = append(s.raw, r)
	}

	// The matcher falls back to its first tag, so the default goes first.
	add(defaultLang)
	for _, l := range supported {
		if l != defaultLang {
			add(l)
		}
	}
	s.matcher = language.NewMatcher(tags)

	return s
}

// Default returns the default language tag.
func (s *Set) Default() string {
	return s.def
}

// Supported returns a copy of the supported language tags, in order.
func (s *Set) Supported() []string {
	return append([]string(nil), s.supported...)
}

// Contains reports whether tag is in the supported set. Comparison is
// exact: the configuration strings are authoritative.
func (s *Set) Contains(tag string) bool {
	for _, l := range s.supported {
		if l == tag {
			return true
		}
	}
	return false
}

// Match returns the configured language that best satisfies an
// Accept-Language header, falling back to the default language when the
// header is empty, malformed, or matches nothing.
func (s *Set) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return s.def
	}
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return s.def
	}
	_, idx, _ := s.matcher.Match(wanted...)
	return s.raw[idx]
}
