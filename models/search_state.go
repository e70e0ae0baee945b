package models

import (
	"sync"
	"time"

	"github.com/rohanthewiz/logger"
)

// DefaultSearchTerm is the search text a fresh root container starts with
const DefaultSearchTerm = "React"

// SearchState is the single owned search text of one root container.
// Children only ever see its value and a callback; Set is the one write path.
type SearchState struct {
	mu   sync.RWMutex
	term string
}

// NewSearchState creates a state holding initial.
// An empty initial value falls back to DefaultSearchTerm.
func NewSearchState(initial string) *SearchState {
	if initial == "" {
		initial = DefaultSearchTerm
	}
	return &SearchState{term: initial}
}

// Term returns the current search text
func (s *SearchState) Term() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// Set replaces the search text. Any value, including "", is accepted.
// Every search change in the app, web or terminal, goes through here.
func (s *SearchState) Set(term string) {
	s.mu.Lock()
	s.term = term
	s.mu.Unlock()

	logger.Info("Search term changed", "value", term)
}

// sessionEntry is a mounted state and when its session was last seen
type sessionEntry struct {
	state    *SearchState
	lastSeen time.Time
}

// SearchStates keeps one SearchState per web session.
// A state is created on first access (mount) and removed by Drop or by
// Sweep once its session has been idle too long (unmount).
type SearchStates struct {
	mu          sync.RWMutex
	defaultTerm string
	states      map[string]*sessionEntry
	now         func() time.Time
}

// NewSearchStates creates an empty registry whose states start at defaultTerm
func NewSearchStates(defaultTerm string) *SearchStates {
	if defaultTerm == "" {
		defaultTerm = DefaultSearchTerm
	}
	return &SearchStates{
		defaultTerm: defaultTerm,
		states:      make(map[string]*sessionEntry),
		now:         time.Now,
	}
}

// For returns the state of sessionID, creating it if needed.
// Every call counts as activity for the session.
func (r *SearchStates) For(sessionID string) *SearchState {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if entry, ok := r.states[sessionID]; ok {
		entry.lastSeen = now
		return entry.state
	}

	st := NewSearchState(r.defaultTerm)
	r.states[sessionID] = &sessionEntry{state: st, lastSeen: now}
	logger.Debug("Search state mounted", "session_id", sessionID, "term", r.defaultTerm)
	return st
}

// Drop discards the state of sessionID
func (r *SearchStates) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.states, sessionID)
	r.mu.Unlock()
}

// Sweep drops every state whose session has not been seen for ttl
// and returns how many were dropped
func (r *SearchStates) Sweep(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	dropped := 0
	for id, entry := range r.states {
		if entry.lastSeen.Before(cutoff) {
			delete(r.states, id)
			dropped++
		}
	}
	return dropped
}

// StartSweeper runs Sweep every ttl/2 in the background until stop is called.
// A non-positive ttl disables eviction.
func (r *SearchStates) StartSweeper(ttl time.Duration) (stop func()) {
	if ttl <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	ticker := time.NewTicker(ttl / 2)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := r.Sweep(ttl); n > 0 {
					logger.Info("Idle search states dropped", "count", n, "remaining", r.Len())
				}
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// Len reports how many sessions currently hold a state
func (r *SearchStates) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
