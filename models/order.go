package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderReady      OrderStatus = "ready"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// orderTransitions is the allowed lifecycle graph. Orders move forward
// through pending -> in_progress -> ready -> delivered; cancellation is
// reachable from any non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderReady, OrderCancelled},
	OrderReady:      {OrderDelivered, OrderCancelled},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

type Order struct {
	// Human-readable time-derived identifier, e.g. ORD-20250114-A3F9K2.
	ID         string    `gorm:"primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	Status   OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Priority string      `gorm:"type:varchar(10);default:'normal'" json:"priority"`

	PickupDate   time.Time  `gorm:"not null" json:"pickupDate"`
	DueDate      time.Time  `gorm:"not null" json:"dueDate"`
	DeliveryDate *time.Time `json:"deliveryDate"`

	// TotalAmount is recomputed from the item set on every write. Client
	// supplied totals are never trusted.
	TotalAmount   float64 `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	PaymentStatus string  `gorm:"type:varchar(10);default:'unpaid'" json:"paymentStatus"`
	Notes         string  `gorm:"type:text" json:"notes"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   string    `gorm:"index;not null" json:"orderId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	// Snapshot of the service name at the time of the sale, so renaming a
	// service later does not rewrite history.
	ServiceName string  `gorm:"not null" json:"serviceName"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	TotalPrice  float64 `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
