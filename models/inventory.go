package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StockLow = "Low Stock"
	StockIn  = "In Stock"
)

type InventoryItem struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	// Free-text unit of measure, e.g. "liters", "pieces".
	Unit         string  `gorm:"not null" json:"unit"`
	Quantity     float64 `gorm:"not null;default:0" json:"quantity"`
	MinLevel     float64 `gorm:"not null;default:10" json:"minLevel"`
	PricePerUnit float64 `gorm:"type:decimal(12,2);default:0.0" json:"pricePerUnit"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

// StockStatus is derived, never stored: at or below the minimum level an
// item counts as low stock, above it as in stock.
func (i *InventoryItem) StockStatus() string {
	return StockStatusFor(i.Quantity, i.MinLevel)
}

func StockStatusFor(quantity, minLevel float64) string {
	if quantity <= minLevel {
		return StockLow
	}
	return StockIn
}
