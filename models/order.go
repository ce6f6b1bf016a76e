package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status lifecycle. An order is created as pending and may only
// become completed through the verified payment confirmation callback.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   *string         `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	CustomerPhone   string          `gorm:"type:varchar(50);not null" json:"customer_phone"`
	DeliveryAddress string          `gorm:"type:varchar(255);not null" json:"delivery_address"`
	City            string          `gorm:"type:varchar(100);not null" json:"city"`
	ZipCode         string          `gorm:"type:varchar(20);not null" json:"zip_code"`
	Notes           *string         `gorm:"type:text" json:"notes,omitempty"`
	Items           string          `gorm:"type:text;not null" json:"items"` // JSON snapshot of the cart lines
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentIntentID *string         `gorm:"type:varchar(255)" json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
}
