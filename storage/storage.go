package storage

import (
	"context"
	"errors"

	"github.com/AgtechDS/menuserve/models"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// MenuStore is the read-only menu catalog boundary.
type MenuStore interface {
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

// OrderStore persists orders and their status transitions.
// CreateOrder assigns the id and forces status pending; callers never
// choose either.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	UpdateOrderPaymentIntent(ctx context.Context, id, paymentIntentID string) error
}

// Store is the full persistence boundary. GormStore is the canonical
// implementation; MemoryStore mirrors its contract for tests.
type Store interface {
	MenuStore
	OrderStore
}
