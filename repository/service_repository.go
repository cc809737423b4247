package repository

import (
	"errors"

	"cleanpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Service, error)
	GetAll() ([]models.Service, error)
	// ReplaceMaterials swaps a service's whole recipe: delete-all, then
	// re-insert, inside one transaction so a failed insert cannot leave the
	// recipe half empty.
	ReplaceMaterials(serviceID uuid.UUID, materials []models.ServiceMaterial) error
	GetMaterials(serviceID uuid.UUID) ([]models.ServiceMaterial, error)
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

func (r *serviceRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&models.ServiceMaterial{}).Error; err != nil {
			return failAt(StageDeleteMaterials, err)
		}

		result := tx.Delete(&models.Service{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *serviceRepository) GetByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) GetAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("name").Find(&services).Error
	return services, err
}

func (r *serviceRepository) ReplaceMaterials(serviceID uuid.UUID, materials []models.ServiceMaterial) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&models.ServiceMaterial{}).Error; err != nil {
			return failAt(StageDeleteMaterials, err)
		}
		if len(materials) > 0 {
			if err := tx.Create(&materials).Error; err != nil {
				return failAt(StageMaterials, err)
			}
		}
		return nil
	})
}

func (r *serviceRepository) GetMaterials(serviceID uuid.UUID) ([]models.ServiceMaterial, error) {
	var materials []models.ServiceMaterial
	err := r.db.Where("service_id = ?", serviceID).Find(&materials).Error
	return materials, err
}
