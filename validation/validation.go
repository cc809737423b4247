// Package validation holds the schema-style input validators. Each form
// validates as a whole: any failing field blocks the submission and nothing
// reaches persistence until every field passes.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cleanpro-backend/models"

	"github.com/google/uuid"
)

// FieldErrors maps a field name to its human-readable failure messages.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Date inputs arrive as strings from forms; both plain calendar dates and
// full timestamps are accepted.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// --- Customer ---

type CustomerForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

type CustomerValues struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Status   string
	Notes    string
}

func (f CustomerForm) Validate() (CustomerValues, FieldErrors) {
	errs := FieldErrors{}

	fullName := strings.TrimSpace(f.FullName)
	if len(fullName) < 2 {
		errs.Add("fullName", "Name must be at least 2 characters")
	}

	email := strings.TrimSpace(f.Email)
	if email != "" && !emailRegex.MatchString(email) {
		errs.Add("email", "Invalid email address")
	}

	phone := strings.TrimSpace(f.Phone)
	if phone != "" && len(phone) < 10 {
		errs.Add("phone", "Phone number must be at least 10 characters")
	}

	status := f.Status
	if status == "" {
		status = models.CustomerActive
	}
	switch status {
	case models.CustomerActive, models.CustomerVIP, models.CustomerInactive:
	default:
		errs.Add("status", "Status must be one of active, vip, inactive")
	}

	if len(errs) > 0 {
		return CustomerValues{}, errs
	}
	return CustomerValues{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Address:  strings.TrimSpace(f.Address),
		Status:   status,
		Notes:    f.Notes,
	}, nil
}

// --- Inventory item ---

type InventoryForm struct {
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	MinLevel     *float64 `json:"minLevel"`
	PricePerUnit float64  `json:"pricePerUnit"`
}

type InventoryValues struct {
	Name         string
	Quantity     float64
	Unit         string
	MinLevel     float64
	PricePerUnit float64
}

func (f InventoryForm) Validate() (InventoryValues, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	if len(name) < 2 {
		errs.Add("name", "Name must be at least 2 characters")
	}

	if f.Quantity < 0 {
		errs.Add("quantity", "Quantity cannot be negative")
	}

	unit := strings.TrimSpace(f.Unit)
	if unit == "" {
		errs.Add("unit", "Unit is required (e.g., pcs, kg, ml)")
	}

	minLevel := 10.0
	if f.MinLevel != nil {
		minLevel = *f.MinLevel
		if minLevel < 0 {
			errs.Add("minLevel", "Minimum level cannot be negative")
		}
	}

	if f.PricePerUnit < 0 {
		errs.Add("pricePerUnit", "Price per unit cannot be negative")
	}

	if len(errs) > 0 {
		return InventoryValues{}, errs
	}
	return InventoryValues{
		Name:         name,
		Quantity:     f.Quantity,
		Unit:         unit,
		MinLevel:     minLevel,
		PricePerUnit: f.PricePerUnit,
	}, nil
}

// --- Order ---

type OrderItemForm struct {
	ServiceID string  `json:"serviceId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderForm struct {
	CustomerID string          `json:"customerId"`
	Priority   string          `json:"priority"`
	PickupDate string          `json:"pickupDate"`
	DueDate    string          `json:"dueDate"`
	Notes      string          `json:"notes"`
	Items      []OrderItemForm `json:"items"`
}

type OrderItemValues struct {
	ServiceID uuid.UUID
	Quantity  int
	UnitPrice float64
}

type OrderValues struct {
	CustomerID uuid.UUID
	Priority   string
	PickupDate time.Time
	DueDate    time.Time
	Notes      string
	Items      []OrderItemValues
}

func (f OrderForm) Validate() (OrderValues, FieldErrors) {
	errs := FieldErrors{}
	values := OrderValues{Notes: f.Notes}

	customerID, err := uuid.Parse(f.CustomerID)
	if err != nil {
		errs.Add("customerId", "Customer is required")
	}
	values.CustomerID = customerID

	priority := f.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	switch priority {
	case models.PriorityLow, models.PriorityNormal, models.PriorityHigh:
	default:
		errs.Add("priority", "Priority must be one of low, normal, high")
	}
	values.Priority = priority

	if pickup, ok := parseDate(f.PickupDate); ok {
		values.PickupDate = pickup
	} else {
		errs.Add("pickupDate", "Invalid pickup date")
	}

	if due, ok := parseDate(f.DueDate); ok {
		values.DueDate = due
	} else {
		errs.Add("dueDate", "Invalid due date")
	}

	values.Items = make([]OrderItemValues, 0, len(f.Items))
	for i, item := range f.Items {
		serviceID, err := uuid.Parse(item.ServiceID)
		if err != nil {
			errs.Add(fmt.Sprintf("items[%d].serviceId", i), "Service is required")
		}
		if item.Quantity < 1 {
			errs.Add(fmt.Sprintf("items[%d].quantity", i), "Quantity must be at least 1")
		}
		if item.UnitPrice < 0 {
			errs.Add(fmt.Sprintf("items[%d].unitPrice", i), "Unit price cannot be negative")
		}
		values.Items = append(values.Items, OrderItemValues{
			ServiceID: serviceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if len(errs) > 0 {
		return OrderValues{}, errs
	}
	return values, nil
}

// --- Service ---

type ServiceForm struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

type ServiceValues struct {
	Name        string
	Description string
	Price       float64
	Category    string
	IsActive    bool
}

func (f ServiceForm) Validate() (ServiceValues, FieldErrors) {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	if len(name) < 2 {
		errs.Add("name", "Name must be at least 2 characters")
	}

	if f.Price < 0 {
		errs.Add("price", "Price must be positive")
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		errs.Add("category", "Category is required")
	}

	isActive := true
	if f.IsActive != nil {
		isActive = *f.IsActive
	}

	if len(errs) > 0 {
		return ServiceValues{}, errs
	}
	return ServiceValues{
		Name:        name,
		Description: f.Description,
		Price:       f.Price,
		Category:    category,
		IsActive:    isActive,
	}, nil
}
