package services

import (
	"errors"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/validation"

	"github.com/google/uuid"
)

// ErrDuplicatePhone is returned when another customer already holds the
// submitted phone number.
var ErrDuplicatePhone = errors.New("customer with this phone number already exists")

type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) Create(form validation.CustomerForm) (*models.Customer, error) {
	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, invalidInput(fieldErrs)
	}

	exists, err := s.customers.ExistsByPhone(values.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePhone
	}

	customer := &models.Customer{
		FullName: values.FullName,
		Email:    values.Email,
		Phone:    values.Phone,
		Address:  values.Address,
		Status:   values.Status,
		Notes:    values.Notes,
	}
	if err := s.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(id uuid.UUID, form validation.CustomerForm) (*models.Customer, error) {
	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, invalidInput(fieldErrs)
	}

	customer, err := s.customers.GetByID(id)
	if err != nil {
		return nil, err
	}

	if values.Phone != "" && values.Phone != customer.Phone {
		exists, err := s.customers.ExistsByPhone(values.Phone, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicatePhone
		}
	}

	customer.FullName = values.FullName
	customer.Email = values.Email
	customer.Phone = values.Phone
	customer.Address = values.Address
	customer.Status = values.Status
	customer.Notes = values.Notes

	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(id uuid.UUID) error {
	return s.customers.Delete(id)
}

func (s *CustomerService) Get(id uuid.UUID) (*models.Customer, error) {
	return s.customers.GetByID(id)
}

func (s *CustomerService) List() ([]models.Customer, error) {
	return s.customers.GetAll()
}
