package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CustomerActive   = "active"
	CustomerVIP      = "vip"
	CustomerInactive = "inactive"
)

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"not null" json:"fullName"`
	Email    string    `json:"email"`
	Phone    string    `gorm:"index" json:"phone"`
	Address  string    `json:"address"`
	Status   string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	Notes    string    `gorm:"type:text" json:"notes"`

	// OutstandingDebt is written only by the billing layer. It grows with
	// unpaid orders and shrinks on recorded payments, floored at zero.
	OutstandingDebt float64 `gorm:"type:decimal(12,2);default:0.0" json:"outstandingDebt"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
