package services

import (
	"fmt"

	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/validation"

	"github.com/google/uuid"
)

// UnknownItem is what a recipe line shows when its inventory item has been
// deleted out from under it. Display degrades instead of failing.
const UnknownItem = "Unknown Item"

type MaterialInput struct {
	InventoryItemID string  `json:"inventoryItemId"`
	Quantity        float64 `json:"quantity"`
}

type RecipeLine struct {
	InventoryItemID uuid.UUID `json:"inventoryItemId"`
	Name            string    `json:"name"`
	Unit            string    `json:"unit"`
	Quantity        float64   `json:"quantity"`
}

// RecipeService maintains the material list a service consumes. The list is
// descriptive only: order fulfilment does not decrement inventory.
type RecipeService struct {
	catalog   repository.ServiceRepository
	inventory repository.InventoryRepository
}

func NewRecipeService(catalog repository.ServiceRepository, inventory repository.InventoryRepository) *RecipeService {
	return &RecipeService{catalog: catalog, inventory: inventory}
}

// SetRecipe replaces the entire material list for a service. Quantities
// must be positive and an inventory item may appear only once.
func (s *RecipeService) SetRecipe(serviceID uuid.UUID, inputs []MaterialInput) error {
	if _, err := s.catalog.GetByID(serviceID); err != nil {
		return fmt.Errorf("service %s: %w", serviceID, err)
	}

	fields := validation.FieldErrors{}
	seen := make(map[uuid.UUID]bool, len(inputs))
	materials := make([]models.ServiceMaterial, 0, len(inputs))

	for i, input := range inputs {
		itemID, err := uuid.Parse(input.InventoryItemID)
		if err != nil {
			fields.Add(fmt.Sprintf("materials[%d].inventoryItemId", i), "Inventory item is required")
			continue
		}
		if input.Quantity <= 0 {
			fields.Add(fmt.Sprintf("materials[%d].quantity", i), "Quantity must be greater than zero")
		}
		if seen[itemID] {
			fields.Add(fmt.Sprintf("materials[%d].inventoryItemId", i), "Duplicate inventory item")
		}
		seen[itemID] = true

		materials = append(materials, models.ServiceMaterial{
			ServiceID:        serviceID,
			InventoryItemID:  itemID,
			QuantityRequired: input.Quantity,
		})
	}

	if len(fields) > 0 {
		return invalidInput(fields)
	}

	return s.catalog.ReplaceMaterials(serviceID, materials)
}

// GetRecipe joins the material list to inventory for display.
func (s *RecipeService) GetRecipe(serviceID uuid.UUID) ([]RecipeLine, error) {
	materials, err := s.catalog.GetMaterials(serviceID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(materials))
	for _, m := range materials {
		ids = append(ids, m.InventoryItemID)
	}

	items, err := s.inventory.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.InventoryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lines := make([]RecipeLine, 0, len(materials))
	for _, m := range materials {
		line := RecipeLine{
			InventoryItemID: m.InventoryItemID,
			Name:            UnknownItem,
			Quantity:        m.QuantityRequired,
		}
		if item, ok := byID[m.InventoryItemID]; ok {
			line.Name = item.Name
			line.Unit = item.Unit
		}
		lines = append(lines, line)
	}
	return lines, nil
}
