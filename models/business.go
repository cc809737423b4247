package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business holds the single laundry profile plus notification settings.
type Business struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `json:"address"`
	Currency     string    `gorm:"type:varchar(5);default:'NGN'" json:"currency"`
	WorkingHours JSONB     `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	WhatsAppNotifications bool `gorm:"default:true" json:"whatsAppNotifications"`
	SMSNotifications      bool `gorm:"default:false" json:"smsNotifications"`
	EmailNotifications    bool `gorm:"default:false" json:"emailNotifications"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
