// Package history models the browser history stack that the router engine
// drives. The engine never manipulates history state directly; it goes
// through the History interface so that the same navigation code works
// against an in-memory stack (tests, headless use) or a real browser tab
// connected through the live bridge.
package history

import (
	"context"
	"sync"
)

// Entry is one history entry: a location path (which may carry a query
// string and fragment) plus the opaque state attached at navigation time.
type Entry struct {
	Path  string
	State any
}

// History is the navigation primitive set the engine depends on.
//
// Push and Replace accept a context because implementations may block on an
// external acknowledgment (the live bridge waits for the browser to confirm
// the history operation).
type History interface {
	// Push appends a new entry and makes it current.
	Push(ctx context.Context, entry Entry) error

	// Replace swaps the current entry without growing the stack.
	Replace(ctx context.Context, entry Entry) error

	// Back moves to the previous entry. Moving back past the first entry
	// is a no-op, matching browser behavior.
	Back() error

	// Reload re-activates the current entry.
	Reload() error

	// Location returns the current entry.
	Location() Entry
}

// Memory is an in-process History backed by a slice. It mirrors browser
// semantics: pushing while not at the top of the stack discards the
// forward entries.
type Memory struct {
	mu      sync.Mutex
	stack   []Entry
	pos     int
	reloads int
}

// NewMemory creates a memory history positioned at initial.
// An empty initial path defaults to "/".
func NewMemory(initial string) *Memory {
	if initial == "" {
		initial = "/"
	}
	return &Memory{
		stack: []Entry{{Path: initial}},
	}
}

// Push appends entry and discards any forward history.
func (m *Memory) Push(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stack = append(m.stack[:m.pos+1], entry)
	m.pos = len(m.stack) - 1
	return nil
}

// Replace swaps the current entry in place.
func (m *Memory) Replace(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stack[m.pos] = entry
	return nil
}

// Back moves to the previous entry, if any.
func (m *Memory) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pos > 0 {
		m.pos--
	}
	return nil
}

// Reload increments the reload counter. The entry itself is unchanged.
func (m *Memory) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reloads++
	return nil
}

// Location returns the current entry.
func (m *Memory) Location() Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stack[m.pos]
}

// Len returns the number of entries on the stack.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.stack)
}

// Reloads returns how many times Reload has been called.
func (m *Memory) Reloads() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reloads
}
