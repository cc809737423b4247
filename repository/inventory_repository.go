package repository

import (
	"errors"

	"cleanpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(item *models.InventoryItem) error
	Update(item *models.InventoryItem) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.InventoryItem, error)
	GetAll() ([]models.InventoryItem, error)
	GetByIDs(ids []uuid.UUID) ([]models.InventoryItem, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.InventoryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetAll() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Order("name").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) GetByIDs(ids []uuid.UUID) ([]models.InventoryItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.InventoryItem
	err := r.db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}
