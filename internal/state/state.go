// Package state owns the live content and theme documents. One State is
// created at boot and passed explicitly to every component; nothing reads
// the documents through package globals. The cache is a passive mirror and
// never authoritative over this copy.
package state

import (
	"encoding/json"
	"sync"

	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/theme"
)

type State struct {
	mu      sync.RWMutex
	content *content.Document
	theme   *theme.Config
	fatal   bool
}

// New creates the application state from a successful boot load.
func New(doc *content.Document, thm *theme.Config) *State {
	return &State{content: doc, theme: thm}
}

// NewFatal creates the terminal error state used when no content could be
// loaded from any source. Only the error page is served from it.
func NewFatal() *State {
	return &State{fatal: true}
}

// Fatal reports whether the application is in the terminal error state.
func (s *State) Fatal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fatal
}

// View runs fn with read access to both documents. fn must not mutate them.
func (s *State) View(fn func(doc *content.Document, thm *theme.Config)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.content, s.theme)
}

// Update runs fn with exclusive access to both documents. Mutations are
// serialized; no two edits interleave mid-mutation.
func (s *State) Update(fn func(doc *content.Document, thm *theme.Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.content, s.theme)
}

// ContentJSON marshals the current content document.
func (s *State) ContentJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.content)
}

// ThemeJSON marshals the current theme document.
func (s *State) ThemeJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.theme)
}
