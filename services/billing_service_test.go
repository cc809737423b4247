package services

import (
	"errors"
	"testing"
	"time"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"

	"github.com/google/uuid"
)

type billingFixture struct {
	billing   *mockBillingRepo
	orders    *mockOrderRepo
	customers *mockCustomerRepo
	svc       *BillingService

	customer *models.Customer
	order    *models.Order
}

func newBillingFixture(orderTotal float64) *billingFixture {
	f := &billingFixture{
		billing:   newMockBillingRepo(),
		orders:    newMockOrderRepo(),
		customers: newMockCustomerRepo(),
	}
	f.svc = NewBillingService(f.billing, f.orders, f.customers)

	f.customer = &models.Customer{FullName: "Ada Obi", OutstandingDebt: orderTotal}
	f.customers.add(f.customer)
	f.billing.debts[f.customer.ID] = orderTotal

	f.order = &models.Order{
		ID:            "ORD-20250114-A3F9K2",
		CustomerID:    f.customer.ID,
		Status:        models.OrderDelivered,
		TotalAmount:   orderTotal,
		PaymentStatus: models.PaymentUnpaid,
		DueDate:       time.Now().Add(48 * time.Hour),
		Items: []models.OrderItem{
			{OrderID: "ORD-20250114-A3F9K2", ServiceName: "Wash & Fold", Quantity: 3, UnitPrice: orderTotal / 3, TotalPrice: orderTotal},
		},
	}
	f.orders.orders[f.order.ID] = f.order
	return f
}

func (f *billingFixture) payment(amount float64) PaymentInput {
	return PaymentInput{
		OrderID:    f.order.ID,
		CustomerID: f.customer.ID.String(),
		Amount:     amount,
		Method:     "cash",
	}
}

func TestRecordPaymentSettlesInvoice(t *testing.T) {
	f := newBillingFixture(4500)

	payment, err := f.svc.RecordPayment(f.payment(4500))
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}

	if payment.Amount != 4500 || payment.OrderID != f.order.ID {
		t.Errorf("payment recorded incorrectly: %+v", payment)
	}
	if debt := f.billing.debts[f.customer.ID]; debt != 0 {
		t.Errorf("outstanding debt = %v, want 0", debt)
	}
	if len(f.billing.markedPaid) != 1 || f.billing.markedPaid[0] != f.order.ID {
		t.Error("covering payment must mark the invoice paid")
	}
}

func TestRecordPaymentPartialAmountKeepsInvoiceOpen(t *testing.T) {
	f := newBillingFixture(4500)

	if _, err := f.svc.RecordPayment(f.payment(2000)); err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}

	if debt := f.billing.debts[f.customer.ID]; debt != 2500 {
		t.Errorf("outstanding debt = %v, want 2500", debt)
	}
	if len(f.billing.markedPaid) != 0 {
		t.Error("partial payment must not mark the invoice paid")
	}
}

func TestDebtNeverGoesNegative(t *testing.T) {
	f := newBillingFixture(4500)

	// Overpayment and repeated payments floor at zero; excess is not
	// tracked as credit.
	for _, amount := range []float64{3000, 3000, 500} {
		if _, err := f.svc.RecordPayment(f.payment(amount)); err != nil {
			t.Fatalf("RecordPayment(%v) returned error: %v", amount, err)
		}
		if debt := f.billing.debts[f.customer.ID]; debt < 0 {
			t.Fatalf("outstanding debt went negative: %v", debt)
		}
	}
	if debt := f.billing.debts[f.customer.ID]; debt != 0 {
		t.Errorf("outstanding debt = %v, want 0", debt)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	f := newBillingFixture(1000)

	tests := []struct {
		name      string
		mutate    func(*PaymentInput)
		wantField string
	}{
		{"zero amount", func(p *PaymentInput) { p.Amount = 0 }, "amount"},
		{"negative amount", func(p *PaymentInput) { p.Amount = -5 }, "amount"},
		{"missing method", func(p *PaymentInput) { p.Method = "" }, "method"},
		{"missing invoice", func(p *PaymentInput) { p.OrderID = "" }, "orderId"},
		{"bad customer id", func(p *PaymentInput) { p.CustomerID = "nope" }, "customerId"},
		{"bad date", func(p *PaymentInput) { p.Date = "someday" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := f.payment(500)
			tt.mutate(&input)

			_, err := f.svc.RecordPayment(input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(vErr.Fields[tt.wantField]) == 0 {
				t.Errorf("expected error on %q, got %v", tt.wantField, vErr.Fields)
			}
		})
	}

	if len(f.billing.payments) != 0 {
		t.Error("no payment may be recorded on validation failure")
	}
}

func TestRecordPaymentChecksOwnership(t *testing.T) {
	f := newBillingFixture(1000)

	input := f.payment(1000)
	input.OrderID = "ORD-19990101-ZZZZZZ"
	if _, err := f.svc.RecordPayment(input); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing invoice: got %v, want ErrNotFound", err)
	}

	stranger := &models.Customer{FullName: "Bayo Ade"}
	f.customers.add(stranger)
	input = f.payment(1000)
	input.CustomerID = stranger.ID.String()

	_, err := f.svc.RecordPayment(input)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for foreign invoice, got %v", err)
	}
	if len(vErr.Fields["customerId"]) == 0 {
		t.Errorf("expected customerId error, got %v", vErr.Fields)
	}
}

func TestDebtorsOrderedByBalance(t *testing.T) {
	f := newBillingFixture(100)

	heavy := uuid.New()
	f.billing.debts[heavy] = 9000
	f.billing.debts[uuid.New()] = 0 // settled, must not appear

	debtors, err := f.svc.Debtors()
	if err != nil {
		t.Fatalf("Debtors returned error: %v", err)
	}
	if len(debtors) != 2 {
		t.Fatalf("debtors = %d, want 2", len(debtors))
	}
	if debtors[0].ID != heavy {
		t.Error("debtors must be ordered by balance descending")
	}
}

func TestInvoiceStatusDerivation(t *testing.T) {
	f := newBillingFixture(4500)

	invoice, err := f.svc.Invoice(f.order.ID)
	if err != nil {
		t.Fatalf("Invoice returned error: %v", err)
	}
	if invoice.Status != InvoicePending {
		t.Errorf("status = %q, want %q", invoice.Status, InvoicePending)
	}
	if invoice.ID != f.order.ID || invoice.CustomerName != "Ada Obi" {
		t.Errorf("invoice header wrong: %+v", invoice)
	}
	if len(invoice.Items) != 1 || invoice.Items[0].Description != "Wash & Fold" {
		t.Errorf("invoice lines wrong: %+v", invoice.Items)
	}
	if invoice.Total != 4500 {
		t.Errorf("total = %v, want 4500", invoice.Total)
	}

	f.order.DueDate = time.Now().Add(-24 * time.Hour)
	invoice, _ = f.svc.Invoice(f.order.ID)
	if invoice.Status != InvoiceOverdue {
		t.Errorf("status = %q, want %q", invoice.Status, InvoiceOverdue)
	}

	f.order.PaymentStatus = models.PaymentPaid
	invoice, _ = f.svc.Invoice(f.order.ID)
	if invoice.Status != InvoicePaid {
		t.Errorf("status = %q, want %q", invoice.Status, InvoicePaid)
	}

	// A cancelled order outranks everything, including a lapsed due date.
	f.order.PaymentStatus = models.PaymentUnpaid
	f.order.Status = models.OrderCancelled
	invoice, _ = f.svc.Invoice(f.order.ID)
	if invoice.Status != InvoiceCancelled {
		t.Errorf("status = %q, want %q", invoice.Status, InvoiceCancelled)
	}

	if _, err := f.svc.Invoice("ORD-19990101-ZZZZZZ"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("missing order: got %v, want ErrNotFound", err)
	}
}

// Full settlement scenario: create-like order state, deliver, pay in full.
func TestOrderSettlementScenario(t *testing.T) {
	f := newBillingFixture(4500)

	if f.order.Status != models.OrderDelivered {
		t.Fatalf("setup: order should be delivered")
	}

	if _, err := f.svc.RecordPayment(f.payment(4500)); err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	if debt := f.billing.debts[f.customer.ID]; debt != 0 {
		t.Errorf("outstanding debt after settlement = %v, want 0", debt)
	}

	invoice, _ := f.svc.Invoice(f.order.ID)
	if invoice.Status == InvoicePaid {
		return // marked through the mock's order linkage if wired
	}
	// The mock does not write back to the order row; the paid marking is
	// asserted via markedPaid instead.
	if len(f.billing.markedPaid) != 1 {
		t.Error("settlement must flip the invoice to paid")
	}
}
