package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	Category    string    `gorm:"default:'General'" json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	Materials []ServiceMaterial `gorm:"foreignKey:ServiceID" json:"materials,omitempty"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// ServiceMaterial links a service to an inventory item it consumes.
// The pair (service_id, inventory_item_id) is the identity; the whole set
// is replaced wholesale whenever a service's recipe is edited.
type ServiceMaterial struct {
	ServiceID        uuid.UUID `gorm:"type:uuid;primary_key" json:"serviceId"`
	InventoryItemID  uuid.UUID `gorm:"type:uuid;primary_key" json:"inventoryItemId"`
	QuantityRequired float64   `gorm:"not null" json:"quantityRequired"`
}
