package cart

import (
	"context"
	"sync"
)

// Store persists one cart per session. Get returns an empty cart for
// an unknown session so callers never deal with a missing-cart case.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps carts in process memory. Used by tests and by
// deployments that run without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[sessionID]
	if !ok {
		return New(), nil
	}
	// Return a copy so callers cannot mutate the stored cart without Save.
	c := stored
	c.Items = append([]Item(nil), stored.Items...)
	return &c, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.Items = append([]Item(nil), c.Items...)
	s.carts[sessionID] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
