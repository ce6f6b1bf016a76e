package models

import (
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `gorm:"type:text;not null" json:"image"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Available   int             `gorm:"not null;default:1" json:"available"`
}
