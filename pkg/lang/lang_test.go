package lang

import "testing"

func TestContains(t *testing.T) {
	s := NewSet("en", []string{"en", "be"})

	if !s.Contains("en") || !s.Contains("be") {
		t.Error("expected en and be to be supported")
	}
	if s.Contains("fr") {
		t.Error("fr should not be supported")
	}
	if s.Contains("EN") {
		t.Error("comparison must be exact, EN should not match")
	}
}

func TestDefaultOutsideSupported(t *testing.T) {
	s := NewSet("en", []string{"nl", "de"})

	if s.Default() != "en" {
		t.Errorf("Default() = %q, want en", s.Default())
	}
	if s.Contains("en") {
		t.Error("default is not implicitly supported")
	}
}

func TestSupportedIsCopy(t *testing.T) {
	s := NewSet("en", []string{"en", "be"})
	got := s.Supported()
	got[0] = "xx"

	if s.Supported()[0] != "en" {
		t.Error("Supported() must return a copy")
	}
}

func TestMatch(t *testing.T) {
	s := NewSet("en", []string{"en", "nl", "de"})

	tests := []struct {
		accept string
		want   string
	}{
		{"", "en"},
		{"garbage;;;", "en"},
		{"nl-BE,nl;q=0.9,en;q=0.8", "nl"},
		{"de-AT", "de"},
		{"fr-FR,fr;q=0.9", "en"},
		{"en-US,en;q=0.5", "en"},
	}

	for _, tt := range tests {
		if got := s.Match(tt.accept); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.accept, got, tt.want)
		}
	}
}
