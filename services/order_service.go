package services

import (
	"fmt"
	"time"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/utils"
	"cleanpro-backend/validation"

	"github.com/google/uuid"
)

// OrderService owns the order lifecycle: creation with line items, replace
// style edits, the status state machine and deletion. Totals are always
// recomputed from the submitted items; a client supplied total is ignored.
type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	catalog   repository.ServiceRepository
}

func NewOrderService(orders repository.OrderRepository, customers repository.CustomerRepository, catalog repository.ServiceRepository) *OrderService {
	return &OrderService{orders: orders, customers: customers, catalog: catalog}
}

// GenerateOrderID builds a human-readable time-derived identifier,
// e.g. ORD-20250114-A3F9K2.
func GenerateOrderID() string {
	return "ORD-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}

func (s *OrderService) Create(form validation.OrderForm) (*models.Order, error) {
	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, invalidInput(fieldErrs)
	}

	if _, err := s.customers.GetByID(values.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %s: %w", values.CustomerID, err)
	}

	orderID := GenerateOrderID()
	items, total, err := s.buildItems(orderID, values.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:            orderID,
		CustomerID:    values.CustomerID,
		Status:        models.OrderPending,
		Priority:      values.Priority,
		PickupDate:    values.PickupDate,
		DueDate:       values.DueDate,
		TotalAmount:   total,
		PaymentStatus: models.PaymentUnpaid,
		Notes:         values.Notes,
		Items:         items,
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Update(orderID string, form validation.OrderForm) (*models.Order, error) {
	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, invalidInput(fieldErrs)
	}

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.customers.GetByID(values.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %s: %w", values.CustomerID, err)
	}

	items, total, err := s.buildItems(orderID, values.Items)
	if err != nil {
		return nil, err
	}

	// While unpaid, the customer's balance tracks the order total; shift it
	// by the difference the edit introduces.
	var debtDelta float64
	if order.PaymentStatus == models.PaymentUnpaid {
		debtDelta = total - order.TotalAmount
	}

	order.CustomerID = values.CustomerID
	order.Priority = values.Priority
	order.PickupDate = values.PickupDate
	order.DueDate = values.DueDate
	order.Notes = values.Notes
	order.TotalAmount = total
	order.Items = items

	if err := s.orders.Update(order, debtDelta); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.Valid() {
		fields := validation.FieldErrors{}
		fields.Add("status", "Status must be one of pending, in_progress, ready, delivered, cancelled")
		return nil, invalidInput(fields)
	}

	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, newStatus, ErrInvalidTransition)
	}

	var deliveredAt *time.Time
	if newStatus == models.OrderDelivered {
		now := time.Now()
		deliveredAt = &now
	}

	// Cancelling an unpaid order releases its share of the debt, the same
	// way deletion does; the customer owes nothing for work never done.
	var debtDelta float64
	if newStatus == models.OrderCancelled && order.PaymentStatus == models.PaymentUnpaid {
		debtDelta = -order.TotalAmount
	}

	if err := s.orders.UpdateStatus(order, newStatus, deliveredAt, debtDelta); err != nil {
		return nil, err
	}

	order.Status = newStatus
	order.DeliveryDate = deliveredAt
	return order, nil
}

func (s *OrderService) Delete(orderID string) error {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return err
	}

	// An unpaid order that disappears releases its share of the debt.
	var debtDelta float64
	if order.PaymentStatus == models.PaymentUnpaid {
		debtDelta = -order.TotalAmount
	}

	return s.orders.Delete(order, debtDelta)
}

func (s *OrderService) Get(orderID string) (*models.Order, error) {
	return s.orders.GetByID(orderID)
}

func (s *OrderService) List() ([]models.Order, error) {
	return s.orders.GetAll()
}

func (s *OrderService) ListByCustomer(customerID uuid.UUID) ([]models.Order, error) {
	return s.orders.GetByCustomer(customerID)
}

func (s *OrderService) buildItems(orderID string, inputs []validation.OrderItemValues) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	var total float64

	for _, input := range inputs {
		service, err := s.catalog.GetByID(input.ServiceID)
		if err != nil {
			return nil, 0, fmt.Errorf("service %s: %w", input.ServiceID, err)
		}

		lineTotal := float64(input.Quantity) * input.UnitPrice
		total += lineTotal

		items = append(items, models.OrderItem{
			OrderID:     orderID,
			ServiceID:   service.ID,
			ServiceName: service.Name,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			TotalPrice:  lineTotal,
		})
	}

	return items, total, nil
}
