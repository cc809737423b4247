package services

import (
	"errors"
	"strings"
	"testing"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/validation"

	"github.com/google/uuid"
)

type orderFixture struct {
	orders    *mockOrderRepo
	customers *mockCustomerRepo
	catalog   *mockCatalogRepo
	svc       *OrderService

	customer *models.Customer
	wash     *models.Service
	iron     *models.Service
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:    newMockOrderRepo(),
		customers: newMockCustomerRepo(),
		catalog:   newMockCatalogRepo(),
	}
	f.svc = NewOrderService(f.orders, f.customers, f.catalog)

	f.customer = &models.Customer{FullName: "Ada Obi", Phone: "+2348012345678"}
	f.customers.add(f.customer)

	f.wash = &models.Service{Name: "Wash & Fold", Price: 1500, Category: "Laundry"}
	f.iron = &models.Service{Name: "Ironing", Price: 500, Category: "Laundry"}
	f.catalog.add(f.wash)
	f.catalog.add(f.iron)
	return f
}

func (f *orderFixture) form(items ...validation.OrderItemForm) validation.OrderForm {
	return validation.OrderForm{
		CustomerID: f.customer.ID.String(),
		PickupDate: "2025-01-14",
		DueDate:    "2025-01-17",
		Items:      items,
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 2, UnitPrice: 1500},
		validation.OrderItemForm{ServiceID: f.iron.ID.String(), Quantity: 3, UnitPrice: 500},
	))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if order.TotalAmount != 4500 {
		t.Errorf("total = %v, want 4500", order.TotalAmount)
	}
	if order.Status != models.OrderPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.PaymentStatus != models.PaymentUnpaid {
		t.Errorf("payment status = %s, want unpaid", order.PaymentStatus)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Errorf("id = %q, want ORD- prefix", order.ID)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].ServiceName != "Wash & Fold" {
		t.Errorf("service name snapshot = %q", order.Items[0].ServiceName)
	}
	if order.Items[1].TotalPrice != 1500 {
		t.Errorf("line total = %v, want 1500", order.Items[1].TotalPrice)
	}

	// Total always equals the sum over the item set.
	var sum float64
	for _, item := range order.Items {
		sum += float64(item.Quantity) * item.UnitPrice
	}
	if order.TotalAmount != sum {
		t.Errorf("total %v drifted from item sum %v", order.TotalAmount, sum)
	}
}

func TestCreateOrderValidationBlocksPersistence(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.Create(validation.OrderForm{
		CustomerID: f.customer.ID.String(),
		PickupDate: "not a date",
		DueDate:    "2025-01-17",
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields["pickupDate"]) == 0 {
		t.Errorf("expected pickupDate error, got %v", vErr.Fields)
	}
	if f.orders.createCalls != 0 {
		t.Error("no persistence write may happen on validation failure")
	}
}

func TestCreateOrderUnknownReferences(t *testing.T) {
	f := newOrderFixture()

	form := f.form()
	form.CustomerID = uuid.New().String()
	if _, err := f.svc.Create(form); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown customer: got %v, want ErrNotFound", err)
	}

	_, err := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: uuid.New().String(), Quantity: 1, UnitPrice: 100},
	))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("unknown service: got %v, want ErrNotFound", err)
	}
	if f.orders.createCalls != 0 {
		t.Error("no order may be created when a reference is missing")
	}
}

func TestCreateOrderSurfacesFailedStage(t *testing.T) {
	f := newOrderFixture()
	f.orders.createErr = &repository.PersistenceError{
		Stage: repository.StageOrderItems,
		Err:   errors.New("insert failed"),
	}

	_, err := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 1, UnitPrice: 1500},
	))

	var pErr *repository.PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if pErr.Stage != repository.StageOrderItems {
		t.Errorf("stage = %q, want %q", pErr.Stage, repository.StageOrderItems)
	}
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 2, UnitPrice: 10},
	))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.TotalAmount != 20 {
		t.Fatalf("setup total = %v, want 20", order.TotalAmount)
	}

	updated, err := f.svc.Update(order.ID, f.form(
		validation.OrderItemForm{ServiceID: f.iron.ID.String(), Quantity: 1, UnitPrice: 50},
	))
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("items after replace = %d, want 1", len(updated.Items))
	}
	if updated.Items[0].ServiceID != f.iron.ID {
		t.Error("old item survived the replacement")
	}
	if updated.TotalAmount != 50 {
		t.Errorf("total = %v, want 50", updated.TotalAmount)
	}
	// Unpaid order: the customer's balance shifts by the total delta.
	if f.orders.updatedDelta != 30 {
		t.Errorf("debt delta = %v, want 30", f.orders.updatedDelta)
	}
}

func TestUpdateOrderEmptyItemsEmptiesSet(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 2, UnitPrice: 10},
	))

	updated, err := f.svc.Update(order.ID, f.form())
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Items) != 0 {
		t.Errorf("items = %d, want 0", len(updated.Items))
	}
	if updated.TotalAmount != 0 {
		t.Errorf("total = %v, want 0", updated.TotalAmount)
	}
}

func TestUpdatePaidOrderLeavesDebtAlone(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 1, UnitPrice: 1000},
	))
	order.PaymentStatus = models.PaymentPaid

	if _, err := f.svc.Update(order.ID, f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 2, UnitPrice: 1000},
	)); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if f.orders.updatedDelta != 0 {
		t.Errorf("debt delta on paid order = %v, want 0", f.orders.updatedDelta)
	}
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 3, UnitPrice: 1500},
	))

	for _, next := range []models.OrderStatus{models.OrderInProgress, models.OrderReady, models.OrderDelivered} {
		updated, err := f.svc.UpdateStatus(order.ID, next)
		if err != nil {
			t.Fatalf("UpdateStatus(%s) returned error: %v", next, err)
		}
		if updated.Status != next {
			t.Errorf("status = %s, want %s", updated.Status, next)
		}
	}

	// Delivery stamps the delivery date.
	last := f.orders.statusWrites[len(f.orders.statusWrites)-1]
	if last.status != models.OrderDelivered || last.deliveredAt == nil {
		t.Error("delivered transition must stamp a delivery date")
	}
	// Everything else is untouched.
	if order.TotalAmount != 4500 {
		t.Errorf("total changed during status updates: %v", order.TotalAmount)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form())

	if _, err := f.svc.UpdateStatus(order.ID, models.OrderDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending -> delivered: got %v, want ErrInvalidTransition", err)
	}
	if len(f.orders.statusWrites) != 0 {
		t.Error("rejected transition must not reach the store")
	}

	var vErr *ValidationError
	if _, err := f.svc.UpdateStatus(order.ID, models.OrderStatus("shipped")); !errors.As(err, &vErr) {
		t.Errorf("unknown status: got %v, want ValidationError", err)
	}
}

func TestCancelOrderReleasesDebt(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 3, UnitPrice: 1500},
	))

	updated, err := f.svc.UpdateStatus(order.ID, models.OrderCancelled)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != models.OrderCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}

	// The 4500 accrued on create comes back off the balance with the
	// cancellation, in the same store write.
	last := f.orders.statusWrites[len(f.orders.statusWrites)-1]
	if last.debtDelta != -4500 {
		t.Errorf("debt delta on cancel = %v, want -4500", last.debtDelta)
	}
}

func TestCancelPaidOrderLeavesDebtAlone(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 1, UnitPrice: 1000},
	))
	order.PaymentStatus = models.PaymentPaid

	if _, err := f.svc.UpdateStatus(order.ID, models.OrderCancelled); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	last := f.orders.statusWrites[len(f.orders.statusWrites)-1]
	if last.debtDelta != 0 {
		t.Errorf("debt delta on cancelling a paid order = %v, want 0", last.debtDelta)
	}
}

func TestDeleteOrderReleasesDebt(t *testing.T) {
	f := newOrderFixture()

	order, _ := f.svc.Create(f.form(
		validation.OrderItemForm{ServiceID: f.wash.ID.String(), Quantity: 2, UnitPrice: 750},
	))

	if err := f.svc.Delete(order.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if f.orders.deletedID != order.ID {
		t.Error("order was not deleted")
	}
	if f.orders.deletedDelta != -1500 {
		t.Errorf("debt delta = %v, want -1500", f.orders.deletedDelta)
	}

	if err := f.svc.Delete("ORD-00000000-XXXXXX"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("deleting missing order: got %v, want ErrNotFound", err)
	}
}
