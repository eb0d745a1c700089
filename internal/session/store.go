// Package session holds the client's view of who is logged in.
package session

import "sync"

// State is Anonymous when Username is empty, Authenticated otherwise.
type State struct {
	Username string
}

// Authenticated reports whether a user is logged in.
func (s State) Authenticated() bool { return s.Username != "" }

// Store is the in-memory session. It is never persisted.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns an Anonymous store.
func NewStore() *Store {
	return &Store{}
}

// Current returns a snapshot of the session.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Authenticate moves to Authenticated(username). An empty username is Anonymous.
func (s *Store) Authenticate(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Username: username}
}

// Clear moves to Anonymous.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}
