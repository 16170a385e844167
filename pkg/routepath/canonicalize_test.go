package routepath

import (
	"errors"
	"testing"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		query   string
		changed bool
	}{
		{"root", "/", "/", "", false},
		{"empty becomes root", "", "/", "", true},
		{"simple path", "/blog/post", "/blog/post", "", false},
		{"trailing slash removed", "/blog/", "/blog", "", true},
		{"double slash collapsed", "/blog//post", "/blog/post", "", true},
		{"missing leading slash", "blog", "/blog", "", true},
		{"dot segment removed", "/blog/./post", "/blog/post", "", true},
		{"dotdot resolved", "/blog/../other", "/other", "", true},
		{"query preserved", "/blog?page=2", "/blog", "page=2", false},
		{"query on changed path", "/blog/?page=2", "/blog", "page=2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.input)
			if err != nil {
				t.Fatalf("Canonicalize(%q) error: %v", tt.input, err)
			}
			if got.Path != tt.want {
				t.Errorf("Path = %q, want %q", got.Path, tt.want)
			}
			if got.Query != tt.query {
				t.Errorf("Query = %q, want %q", got.Query, tt.query)
			}
			if got.Changed != tt.changed {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.changed)
			}
		})
	}
}

func TestCanonicalizeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"backslash", `/blog\post`, ErrBackslashInPath},
		{"null byte", "/blog\x00", ErrNullByteInPath},
		{"encoded null", "/blog%00", ErrNullByteInPath},
		{"bad escape", "/blog%GG", ErrInvalidPercentEscape},
		{"truncated escape", "/blog%2", ErrInvalidPercentEscape},
		{"escape above root", "/../secret", ErrPathEscapesRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Canonicalize(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Canonicalize(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestValidateNavPath(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"/blog", "/blog", false},
		{"/blog/?page=2", "/blog?page=2", false},
		{"http://evil.example/", "", true},
		{"https://evil.example/", "", true},
		{"//evil.example/", "", true},
		{"relative/path", "", true},
		{"/../x", "", true},
	}

	for _, tt := range tests {
		got, err := ValidateNavPath(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ValidateNavPath(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateNavPath(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateNavPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodeSegment(t *testing.T) {
	if got, err := DecodeSegment("caf%C3%A9", false); err != nil || got != "café" {
		t.Errorf("DecodeSegment = %q, %v", got, err)
	}
	if _, err := DecodeSegment("a%2Fb", false); !errors.Is(err, ErrEncodedSlashInSegment) {
		t.Errorf("expected ErrEncodedSlashInSegment, got %v", err)
	}
	if got, err := DecodeSegment("a%2Fb", true); err != nil || got != "a/b" {
		t.Errorf("catch-all DecodeSegment = %q, %v", got, err)
	}
}

func TestSplit(t *testing.T) {
	p, q := Split("/blog?page=2&tag=go")
	if p != "/blog" || q != "page=2&tag=go" {
		t.Errorf("Split = %q, %q", p, q)
	}
	p, q = Split("/blog")
	if p != "/blog" || q != "" {
		t.Errorf("Split = %q, %q", p, q)
	}
}
