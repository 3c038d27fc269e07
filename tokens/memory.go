package tokens

import (
	"context"
	"sync"
)

// MemoryStore defines a public type used by cognauth APIs.
//
// MemoryStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MemoryStore struct {
	mu      sync.RWMutex
	set     TokenSet
	profile Profile
	state   string
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
//
// NewMemoryStore may return an error when input validation, dependency calls, or security checks fail.
// NewMemoryStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or security checks fail.
// Save does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Save(_ context.Context, set TokenSet, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = set
	if profile != nil {
		s.profile = *profile
	} else {
		s.profile = Profile{}
	}

	return nil
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or security checks fail.
// Load does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Load(_ context.Context) (TokenSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set.Complete() {
		return TokenSet{}, ErrNoSession
	}

	return s.set, nil
}

// Peek describes the peek operation and its observable behavior.
//
// Peek may return an error when input validation, dependency calls, or security checks fail.
// Peek does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Peek(_ context.Context) (TokenSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.set, nil
}

// LoadProfile describes the loadprofile operation and its observable behavior.
//
// LoadProfile may return an error when input validation, dependency calls, or security checks fail.
// LoadProfile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) LoadProfile(_ context.Context) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile, nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or security checks fail.
// Clear does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = TokenSet{}
	s.profile = Profile{}
	s.state = ""

	return nil
}

// PutState describes the putstate operation and its observable behavior.
//
// PutState may return an error when input validation, dependency calls, or security checks fail.
// PutState does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) PutState(_ context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state

	return nil
}

// TakeState describes the takestate operation and its observable behavior.
//
// TakeState may return an error when input validation, dependency calls, or security checks fail.
// TakeState does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) TakeState(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == "" {
		return "", ErrNoState
	}

	state := s.state
	s.state = ""

	return state, nil
}
