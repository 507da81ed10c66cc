package client

import (
	"context"
	"sync"
)

// SessionStore is the process-wide auth state shared by every protected
// view. Consumers must distinguish three states: loading (make no access
// decision), resolved-unauthenticated (user nil), and authenticated.
//
// Only Bootstrap, Login, and Logout mutate the store.
type SessionStore struct {
	client *Client

	mu        sync.RWMutex
	user      *User
	isLoading bool
}

func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{
		client:    client,
		isLoading: true,
	}
}

// Snapshot returns a consistent (user, isLoading) pair.
func (s *SessionStore) Snapshot() (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.isLoading
}

// User returns the current user, or nil when unauthenticated or still
// loading.
func (s *SessionStore) User() *User {
	u, _ := s.Snapshot()
	return u
}

// IsLoading reports whether the initial session resolution is still pending.
func (s *SessionStore) IsLoading() bool {
	_, loading := s.Snapshot()
	return loading
}

// Bootstrap resolves the session by calling the whoami endpoint. Any failure,
// a 401 or a transport error alike, resolves to the unauthenticated state;
// it is an expected outcome, never an error.
func (s *SessionStore) Bootstrap(ctx context.Context) {
	user, err := s.client.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.user = nil
	} else {
		s.user = user
	}
	s.isLoading = false
}

// Login records a user after a successful credential submission. It performs
// no network I/O itself.
func (s *SessionStore) Login(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.isLoading = false
}

// Logout clears the user. The server cookie is cleared separately via
// Client.Logout; the store does not wait for it.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.isLoading = false
}
