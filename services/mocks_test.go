package services

import (
	"sort"
	"time"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"

	"github.com/google/uuid"
)

// Hand-rolled fakes for the repository interfaces. They keep state in maps
// and mirror the store-level debt clamp so billing behavior can be asserted
// without a database.

type statusWrite struct {
	id          string
	status      models.OrderStatus
	deliveredAt *time.Time
	debtDelta   float64
}

type mockOrderRepo struct {
	orders map[string]*models.Order

	createCalls  int
	createErr    error
	created      *models.Order
	updated      *models.Order
	updatedDelta float64
	updateErr    error
	statusWrites []statusWrite
	deletedID    string
	deletedDelta float64
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*models.Order)}
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.created = order
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) Update(order *models.Order, debtDelta float64) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = order
	m.updatedDelta = debtDelta
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) UpdateStatus(order *models.Order, status models.OrderStatus, deliveredAt *time.Time, debtDelta float64) error {
	m.statusWrites = append(m.statusWrites, statusWrite{
		id:          order.ID,
		status:      status,
		deliveredAt: deliveredAt,
		debtDelta:   debtDelta,
	})
	if stored, ok := m.orders[order.ID]; ok {
		stored.Status = status
		if deliveredAt != nil {
			stored.DeliveryDate = deliveredAt
		}
	}
	return nil
}

func (m *mockOrderRepo) Delete(order *models.Order, debtDelta float64) error {
	m.deletedID = order.ID
	m.deletedDelta = debtDelta
	delete(m.orders, order.ID)
	return nil
}

func (m *mockOrderRepo) GetByID(id string) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return order, nil
}

func (m *mockOrderRepo) GetAll() ([]models.Order, error) {
	orders := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (m *mockOrderRepo) GetByCustomer(customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

type mockCustomerRepo struct {
	customers   map[uuid.UUID]*models.Customer
	takenPhones map[string]uuid.UUID

	createCalls int
	created     *models.Customer
	updated     *models.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{
		customers:   make(map[uuid.UUID]*models.Customer),
		takenPhones: make(map[string]uuid.UUID),
	}
}

func (m *mockCustomerRepo) add(customer *models.Customer) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	m.customers[customer.ID] = customer
	if customer.Phone != "" {
		m.takenPhones[customer.Phone] = customer.ID
	}
}

func (m *mockCustomerRepo) Create(customer *models.Customer) error {
	m.createCalls++
	m.created = customer
	m.add(customer)
	return nil
}

func (m *mockCustomerRepo) Update(customer *models.Customer) error {
	m.updated = customer
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) Delete(id uuid.UUID) error {
	if _, ok := m.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepo) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return customer, nil
}

func (m *mockCustomerRepo) GetAll() ([]models.Customer, error) {
	customers := make([]models.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		customers = append(customers, *c)
	}
	return customers, nil
}

func (m *mockCustomerRepo) ExistsByPhone(phone string, excludeID uuid.UUID) (bool, error) {
	owner, ok := m.takenPhones[phone]
	if !ok {
		return false, nil
	}
	return owner != excludeID, nil
}

type mockCatalogRepo struct {
	services  map[uuid.UUID]*models.Service
	materials map[uuid.UUID][]models.ServiceMaterial

	replaceCalls int
	replaceErr   error
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		services:  make(map[uuid.UUID]*models.Service),
		materials: make(map[uuid.UUID][]models.ServiceMaterial),
	}
}

func (m *mockCatalogRepo) add(service *models.Service) {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	m.services[service.ID] = service
}

func (m *mockCatalogRepo) Create(service *models.Service) error {
	m.add(service)
	return nil
}

func (m *mockCatalogRepo) Update(service *models.Service) error {
	m.services[service.ID] = service
	return nil
}

func (m *mockCatalogRepo) Delete(id uuid.UUID) error {
	if _, ok := m.services[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.services, id)
	delete(m.materials, id)
	return nil
}

func (m *mockCatalogRepo) GetByID(id uuid.UUID) (*models.Service, error) {
	service, ok := m.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return service, nil
}

func (m *mockCatalogRepo) GetAll() ([]models.Service, error) {
	services := make([]models.Service, 0, len(m.services))
	for _, s := range m.services {
		services = append(services, *s)
	}
	return services, nil
}

func (m *mockCatalogRepo) ReplaceMaterials(serviceID uuid.UUID, materials []models.ServiceMaterial) error {
	m.replaceCalls++
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.materials[serviceID] = materials
	return nil
}

func (m *mockCatalogRepo) GetMaterials(serviceID uuid.UUID) ([]models.ServiceMaterial, error) {
	return m.materials[serviceID], nil
}

type mockInventoryRepo struct {
	items map[uuid.UUID]*models.InventoryItem

	createCalls int
	created     *models.InventoryItem
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{items: make(map[uuid.UUID]*models.InventoryItem)}
}

func (m *mockInventoryRepo) add(item *models.InventoryItem) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.items[item.ID] = item
}

func (m *mockInventoryRepo) Create(item *models.InventoryItem) error {
	m.createCalls++
	m.created = item
	m.add(item)
	return nil
}

func (m *mockInventoryRepo) Update(item *models.InventoryItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockInventoryRepo) Delete(id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockInventoryRepo) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (m *mockInventoryRepo) GetAll() ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0, len(m.items))
	for _, i := range m.items {
		items = append(items, *i)
	}
	return items, nil
}

func (m *mockInventoryRepo) GetByIDs(ids []uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			items = append(items, *item)
		}
	}
	return items, nil
}

// mockBillingRepo mirrors the store-level conditional update: the balance
// decrement is clamped at zero exactly like the GREATEST(...) expression.
type mockBillingRepo struct {
	debts      map[uuid.UUID]float64
	payments   []*models.Payment
	markedPaid []string
	recordErr  error
}

func newMockBillingRepo() *mockBillingRepo {
	return &mockBillingRepo{debts: make(map[uuid.UUID]float64)}
}

func (m *mockBillingRepo) RecordPayment(payment *models.Payment, coversTotal bool) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.payments = append(m.payments, payment)

	remaining := m.debts[payment.CustomerID] - payment.Amount
	if remaining < 0 {
		remaining = 0
	}
	m.debts[payment.CustomerID] = remaining

	if coversTotal {
		m.markedPaid = append(m.markedPaid, payment.OrderID)
	}
	return nil
}

func (m *mockBillingRepo) Debtors() ([]models.Customer, error) {
	var debtors []models.Customer
	for id, debt := range m.debts {
		if debt > 0 {
			debtors = append(debtors, models.Customer{ID: id, OutstandingDebt: debt})
		}
	}
	sort.Slice(debtors, func(i, j int) bool {
		return debtors[i].OutstandingDebt > debtors[j].OutstandingDebt
	})
	return debtors, nil
}

func (m *mockBillingRepo) PaymentsBetween(start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	for _, p := range m.payments {
		if !p.PaidAt.Before(start) && p.PaidAt.Before(end) {
			payments = append(payments, *p)
		}
	}
	return payments, nil
}
