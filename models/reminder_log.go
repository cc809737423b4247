// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DebtReminderLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Channel      string  `gorm:"type:varchar(20)" json:"channel"` // whatsapp, sms, email
	Message      string  `gorm:"type:text" json:"message"`
	Amount       float64 `gorm:"type:decimal(12,2)" json:"amount"`
	Status       string  `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string  `gorm:"type:text" json:"errorMessage"`

	SentAt    time.Time `json:"sentAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *DebtReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
