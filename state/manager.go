package state

import (
	"context"
	"sync"

	"electrofusion/kv"
)

// Manager hands out one Store per user id and keeps it for the life of the
// process, so every request for the same user sees the same state. It is
// constructed once in main and passed to the handlers that need it.
type Manager struct {
	mu     sync.Mutex
	kv     kv.Store
	stores map[string]*Store
}

func NewManager(store kv.Store) *Manager {
	return &Manager{
		kv:     store,
		stores: make(map[string]*Store),
	}
}

// ForUser returns the user's store, rehydrating it from durable storage on
// first access.
func (m *Manager) ForUser(ctx context.Context, userID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[userID]; ok {
		return s
	}
	s := NewStore(ctx, m.kv, userID)
	m.stores[userID] = s
	return s
}

// Drop forgets the user's store. Used after logout; the next access starts
// from the (now erased) durable records.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, userID)
}
