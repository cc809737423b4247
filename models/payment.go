package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    string    `gorm:"index;not null" json:"orderId"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Amount    float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method    string    `gorm:"type:varchar(30);not null" json:"method"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `gorm:"not null" json:"paidAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
