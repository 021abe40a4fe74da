package auth

import (
	"sync"

	"gymcli/internal/models"
)

// State is a snapshot of the session at one instant.
//
// User carries the identity of the signed-in account; its zero value means
// nobody is signed in. Rehydrating is true while an operation that may
// change the identity is in flight, including the startup rehydration.
type State struct {
	User        models.User
	Rehydrating bool
}

// Session holds the current session state for the whole process.
//
// Consumers observe it through Current, User and Rehydrating; mutation goes
// through the single unexported update entry point, so only the Manager
// (same package) can transition the state. A new Session starts in the
// rehydrating phase: consumers should treat it as "unknown yet" until the
// Manager finishes the startup rehydration.
type Session struct {
	mu sync.RWMutex
	st State
}

func NewSession() *Session {
	return &Session{st: State{Rehydrating: true}}
}

// Current returns a snapshot of the session state.
func (s *Session) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st
}

// User returns the currently signed-in user, zero when anonymous.
func (s *Session) User() models.User {
	return s.Current().User
}

// Rehydrating reports whether a session-changing operation is in flight.
func (s *Session) Rehydrating() bool {
	return s.Current().Rehydrating
}

// update applies fn to the state under the write lock. It is the only
// mutation path into a Session.
func (s *Session) update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.st)
}
