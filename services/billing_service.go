package services

import (
	"fmt"
	"time"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/validation"

	"github.com/google/uuid"
)

const (
	InvoicePaid      = "Paid"
	InvoicePending   = "Pending"
	InvoiceOverdue   = "Overdue"
	InvoiceCancelled = "Cancelled"
)

// Invoice is a read model rendered from an order, its customer and its
// line items. It is never stored; the order is the source of truth.
type Invoice struct {
	ID           string        `json:"id"`
	CustomerID   uuid.UUID     `json:"customerId"`
	CustomerName string        `json:"customerName"`
	IssueDate    time.Time     `json:"issueDate"`
	DueDate      time.Time     `json:"dueDate"`
	Status       string        `json:"status"`
	Items        []InvoiceLine `json:"items"`
	Total        float64       `json:"total"`
}

type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type PaymentInput struct {
	OrderID    string  `json:"orderId"`
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	Reference  string  `json:"reference"`
	Date       string  `json:"date"`
}

// BillingService keeps customer.outstanding_debt in step with unpaid order
// totals: payments shrink it (floored at zero, overpayment is not tracked
// as credit) and a covering payment flips the invoice to paid.
type BillingService struct {
	billing   repository.BillingRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

func NewBillingService(billing repository.BillingRepository, orders repository.OrderRepository, customers repository.CustomerRepository) *BillingService {
	return &BillingService{billing: billing, orders: orders, customers: customers}
}

func (s *BillingService) RecordPayment(input PaymentInput) (*models.Payment, error) {
	fields := validation.FieldErrors{}

	if input.OrderID == "" {
		fields.Add("orderId", "Invoice is required")
	}
	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		fields.Add("customerId", "Customer is required")
	}
	if input.Amount <= 0 {
		fields.Add("amount", "Amount must be greater than zero")
	}
	if input.Method == "" {
		fields.Add("method", "Payment method is required")
	}

	paidAt := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, input.Date)
		}
		if err != nil {
			fields.Add("date", "Invalid payment date")
		} else {
			paidAt = parsed
		}
	}

	if len(fields) > 0 {
		return nil, invalidInput(fields)
	}

	order, err := s.orders.GetByID(input.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", input.OrderID, err)
	}
	if order.CustomerID != customerID {
		fields.Add("customerId", "Invoice does not belong to this customer")
		return nil, invalidInput(fields)
	}

	payment := &models.Payment{
		OrderID:    order.ID,
		CustomerID: customerID,
		Amount:     input.Amount,
		Method:     input.Method,
		Reference:  input.Reference,
		PaidAt:     paidAt,
	}

	coversTotal := input.Amount >= order.TotalAmount
	if err := s.billing.RecordPayment(payment, coversTotal); err != nil {
		return nil, err
	}
	return payment, nil
}

// Debtors lists customers carrying a balance, largest first. Pure read.
func (s *BillingService) Debtors() ([]models.Customer, error) {
	return s.billing.Debtors()
}

// Payments lists payments recorded inside [start, end), newest first.
func (s *BillingService) Payments(start, end time.Time) ([]models.Payment, error) {
	return s.billing.PaymentsBetween(start, end)
}

func (s *BillingService) Invoice(orderID string) (*Invoice, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", orderID, err)
	}

	customer, err := s.customers.GetByID(order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invoice customer %s: %w", order.CustomerID, err)
	}

	return buildInvoice(order, customer.FullName, time.Now()), nil
}

func (s *BillingService) Invoices() ([]Invoice, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}

	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.FullName
	}

	now := time.Now()
	invoices := make([]Invoice, 0, len(orders))
	for i := range orders {
		name, ok := names[orders[i].CustomerID]
		if !ok {
			name = "Unknown Customer"
		}
		invoices = append(invoices, *buildInvoice(&orders[i], name, now))
	}
	return invoices, nil
}

func buildInvoice(order *models.Order, customerName string, now time.Time) *Invoice {
	lines := make([]InvoiceLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, InvoiceLine{
			Description: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.TotalPrice,
		})
	}

	// A cancelled order carries no receivable, so it never reads overdue.
	status := InvoicePending
	switch {
	case order.Status == models.OrderCancelled:
		status = InvoiceCancelled
	case order.PaymentStatus == models.PaymentPaid:
		status = InvoicePaid
	case order.DueDate.Before(now):
		status = InvoiceOverdue
	}

	return &Invoice{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: customerName,
		IssueDate:    order.CreatedAt,
		DueDate:      order.DueDate,
		Status:       status,
		Items:        lines,
		Total:        order.TotalAmount,
	}
}
