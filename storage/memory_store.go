package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AgtechDS/menuserve/models"
)

// MemoryStore is the in-memory Store used by unit tests. It follows
// the GormStore contract exactly: same sentinel errors, copies on
// every read, ids and pending status assigned by CreateOrder.
type MemoryStore struct {
	mu     sync.RWMutex
	menu   map[string]models.MenuItem
	order  []string // menu insertion order
	orders map[string]models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		menu:   make(map[string]models.MenuItem),
		orders: make(map[string]models.Order),
	}
}

// SeedMenuItem inserts a catalog item. Test helper; the catalog is
// read-only through the Store interface.
func (s *MemoryStore) SeedMenuItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if _, exists := s.menu[item.ID]; !exists {
		s.order = append(s.order, item.ID)
	}
	s.menu[item.ID] = item
}

func (s *MemoryStore) ListMenuItems(_ context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(s.menu))
	for _, id := range s.order {
		items = append(items, s.menu[id])
	}
	return items, nil
}

func (s *MemoryStore) ListMenuItemsByCategory(_ context.Context, category string) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, 0)
	for _, id := range s.order {
		if s.menu[id].Category == category {
			items = append(items, s.menu[id])
		}
	}
	return items, nil
}

func (s *MemoryStore) GetMenuItem(_ context.Context, id string) (*models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menu[id]
	if !ok {
		return nil, ErrMenuItemNotFound
	}
	return &item, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.NewString()
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now()
	s.orders[order.ID] = *order
	return nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func (s *MemoryStore) UpdateOrderStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	s.orders[id] = order
	return nil
}

func (s *MemoryStore) UpdateOrderPaymentIntent(_ context.Context, id, paymentIntentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	order.PaymentIntentID = &paymentIntentID
	s.orders[id] = order
	return nil
}
