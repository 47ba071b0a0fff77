// Package sessionstore keeps maze sessions in memory or in Redis.
package sessionstore

import (
	"context"
	"sync"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// MemoryStore keeps sessions in a map. Sessions never expire.
// Implements i.SessionStore.
type MemoryStore struct {
	sessions map[uuid.UUID]*dmn.Session
	locks    map[uuid.UUID]*sync.Mutex
	mu       sync.RWMutex
}

var _ i.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*dmn.Session),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// Save stores a copy of s.
func (m *MemoryStore) Save(ctx context.Context, s *dmn.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

// Load returns a copy of the stored session.
func (m *MemoryStore) Load(ctx context.Context, id uuid.UUID) (*dmn.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, dmn.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Delete removes a session.
func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return dmn.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Lock takes the per-session mutex, creating it on first use.
func (m *MemoryStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	mu, ok := m.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		m.locks[id] = mu
	}
	m.mu.Unlock()

	mu.Lock()
	return mu.Unlock, nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
