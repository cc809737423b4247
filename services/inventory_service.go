package services

import (
	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/validation"

	"github.com/google/uuid"
)

// InventoryView is an item plus its derived stock classification.
type InventoryView struct {
	models.InventoryItem
	StockStatus string `json:"stockStatus"`
}

type InventoryService struct {
	inventory repository.InventoryRepository
}

func NewInventoryService(inventory repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventory: inventory}
}

func (s *InventoryService) Create(form validation.InventoryForm) (*InventoryView, error) {
	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, invalidInput(fieldErrs)
	}

	item := &models.InventoryItem{
		Name:         values.Name,
		Quantity:     values.Quantity,
		Unit:         values.Unit,
		MinLevel:     values.MinLevel,
		PricePerUnit: values.PricePerUnit,
	}
	if err := s.inventory.Create(item); err != nil {
		return nil, err
	}
	return view(item), nil
}

func (s *InventoryService) Update(id uuid.UUID, form validation.InventoryForm) (*InventoryView, error) {
	values, fieldErrs := form.Validate()
	if fieldErrs != nil {
		return nil, invalidInput(fieldErrs)
	}

	item, err := s.inventory.GetByID(id)
	if err != nil {
		return nil, err
	}

	item.Name = values.Name
	item.Quantity = values.Quantity
	item.Unit = values.Unit
	item.MinLevel = values.MinLevel
	item.PricePerUnit = values.PricePerUnit

	if err := s.inventory.Update(item); err != nil {
		return nil, err
	}
	return view(item), nil
}

func (s *InventoryService) Delete(id uuid.UUID) error {
	return s.inventory.Delete(id)
}

func (s *InventoryService) Get(id uuid.UUID) (*InventoryView, error) {
	item, err := s.inventory.GetByID(id)
	if err != nil {
		return nil, err
	}
	return view(item), nil
}

func (s *InventoryService) List() ([]InventoryView, error) {
	items, err := s.inventory.GetAll()
	if err != nil {
		return nil, err
	}

	views := make([]InventoryView, 0, len(items))
	for _, item := range items {
		views = append(views, *view(&item))
	}
	return views, nil
}

func view(item *models.InventoryItem) *InventoryView {
	return &InventoryView{InventoryItem: *item, StockStatus: item.StockStatus()}
}
