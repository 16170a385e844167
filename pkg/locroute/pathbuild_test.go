package locroute

import "testing"

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name        string
		language    string
		defaultLang string
		raw         string
		want        string
	}{
		{"default language unchanged", "en", "en", "/about", "/about"},
		{"default language root", "en", "en", "/", "/"},
		{"prefixed", "be", "en", "/over-ons", "/be/over-ons"},
		{"root collapses", "be", "en", "/", "/be"},
		{"nested path", "nl", "en", "/blog/:slug", "/nl/blog/:slug"},
		{"default outside supported still unprefixed", "de", "de", "/impressum", "/impressum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPath(tt.language, tt.defaultLang, tt.raw); got != tt.want {
				t.Errorf("BuildPath(%q, %q, %q) = %q, want %q",
					tt.language, tt.defaultLang, tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildPathIdempotentOnDefault(t *testing.T) {
	for _, raw := range []string{"/", "/about", "/blog/:slug", ""} {
		if got := BuildPath("en", "en", raw); got != raw {
			t.Errorf("BuildPath(en, en, %q) = %q, want input unchanged", raw, got)
		}
	}
}
