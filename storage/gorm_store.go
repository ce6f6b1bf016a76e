package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgtechDS/menuserve/models"
)

// GormStore backs the catalog and order boundaries with a relational
// database (MySQL in production, SQLite in tests and local dev).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (s *GormStore) ListMenuItemsByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.WithContext(ctx).
		Where("category = ?", category).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu items by category: %w", err)
	}
	return items, nil
}

func (s *GormStore) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	order.ID = uuid.NewString()
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now()

	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (s *GormStore) UpdateOrderStatus(ctx context.Context, id, status string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.First(&order, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
}

func (s *GormStore) UpdateOrderPaymentIntent(ctx context.Context, id, paymentIntentID string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.First(&order, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("update order payment intent: %w", err)
		}

		order.PaymentIntentID = &paymentIntentID
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("update order payment intent: %w", err)
		}
		return nil
	})
}
