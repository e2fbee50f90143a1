// Package tags implements the ordered, duplicate-free string list edited by
// the skills fields of the profile form and the dashboard onboarding step.
package tags

import (
	"slices"
	"strings"
	"sync"
)

// Editor is an ordered list of unique, trimmed strings.
type Editor struct {
	mu    sync.Mutex
	items []string
}

// New builds an editor seeded with initial. Seeds go through Add, so blanks
// and duplicates are dropped.
func New(initial ...string) *Editor {
	e := &Editor{items: make([]string, 0, len(initial))}
	for _, v := range initial {
		e.Add(v)
	}
	return e
}

// Add appends the trimmed value. Empty values and exact duplicates are
// ignored; the return reports whether the list changed.
func (e *Editor) Add(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if slices.Contains(e.items, v) {
		return false
	}
	e.items = append(e.items, v)
	return true
}

// Remove deletes the matching entry. Removing an absent value is a no-op.
func (e *Editor) Remove(value string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := slices.Index(e.items, value)
	if i < 0 {
		return false
	}
	e.items = slices.Delete(e.items, i, i+1)
	return true
}

// Items returns a copy of the list in insertion order. It is never nil.
func (e *Editor) Items() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.items))
	copy(out, e.items)
	return out
}

// Reset replaces the contents with values, applying the Add rules.
func (e *Editor) Reset(values ...string) {
	e.mu.Lock()
	e.items = e.items[:0]
	e.mu.Unlock()
	for _, v := range values {
		e.Add(v)
	}
}
