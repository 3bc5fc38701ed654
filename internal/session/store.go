// Package session maps opaque tokens to authenticated identities. State
// lives entirely in process memory; restarting the server signs everyone out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"blog/internal/models"
)

type entry struct {
	identity  models.Identity
	expiresAt time.Time
}

type Store struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, m: make(map[string]entry)}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Start binds a fresh token to id. A user may hold any number of
// simultaneous sessions.
func (s *Store) Start(id models.Identity) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.m[token] = entry{identity: id, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Resolve returns the identity bound to token, if any. Expired entries are
// dropped on the way out.
func (s *Store) Resolve(token string) (models.Identity, bool) {
	s.mu.RLock()
	e, ok := s.m[token]
	s.mu.RUnlock()
	if !ok {
		return models.Identity{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.End(token)
		return models.Identity{}, false
	}
	return e.identity, true
}

// End destroys the session. Ending an absent session is not an error.
func (s *Store) End(token string) {
	s.mu.Lock()
	delete(s.m, token)
	s.mu.Unlock()
}

// Sweep removes expired sessions and reports how many were dropped.
func (s *Store) Sweep() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, e := range s.m {
		if now.After(e.expiresAt) {
			delete(s.m, token)
			n++
		}
	}
	return n
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
