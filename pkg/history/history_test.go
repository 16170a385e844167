package history

import (
	"context"
	"testing"
)

func TestMemoryInitialLocation(t *testing.T) {
	m := NewMemory("")
	if got := m.Location().Path; got != "/" {
		t.Errorf("Location() = %q, want %q", got, "/")
	}

	m = NewMemory("/start")
	if got := m.Location().Path; got != "/start" {
		t.Errorf("Location() = %q, want %q", got, "/start")
	}
}

func TestMemoryPushAndBack(t *testing.T) {
	m := NewMemory("/")
	ctx := context.Background()

	m.Push(ctx, Entry{Path: "/a"})
	m.Push(ctx, Entry{Path: "/b"})

	if got := m.Location().Path; got != "/b" {
		t.Fatalf("Location() = %q, want %q", got, "/b")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}

	m.Back()
	if got := m.Location().Path; got != "/a" {
		t.Errorf("after Back, Location() = %q, want %q", got, "/a")
	}

	m.Back()
	m.Back() // past the first entry: no-op
	if got := m.Location().Path; got != "/" {
		t.Errorf("after Back past start, Location() = %q, want %q", got, "/")
	}
}

func TestMemoryPushDiscardsForward(t *testing.T) {
	m := NewMemory("/")
	ctx := context.Background()

	m.Push(ctx, Entry{Path: "/a"})
	m.Push(ctx, Entry{Path: "/b"})
	m.Back()
	m.Push(ctx, Entry{Path: "/c"})

	if got := m.Location().Path; got != "/c" {
		t.Fatalf("Location() = %q, want %q", got, "/c")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (forward entry discarded)", m.Len())
	}
}

func TestMemoryReplace(t *testing.T) {
	m := NewMemory("/")
	ctx := context.Background()

	m.Push(ctx, Entry{Path: "/a"})
	m.Replace(ctx, Entry{Path: "/a2", State: 42})

	if got := m.Location(); got.Path != "/a2" || got.State != 42 {
		t.Errorf("Location() = %+v, want path /a2 state 42", got)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	m.Back()
	if got := m.Location().Path; got != "/" {
		t.Errorf("after Back, Location() = %q, want %q", got, "/")
	}
}

func TestMemoryReload(t *testing.T) {
	m := NewMemory("/")
	m.Reload()
	m.Reload()

	if m.Reloads() != 2 {
		t.Errorf("Reloads() = %d, want 2", m.Reloads())
	}
	if got := m.Location().Path; got != "/" {
		t.Errorf("Reload changed location to %q", got)
	}
}
