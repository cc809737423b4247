package repository

import (
	"errors"
	"time"

	"cleanpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(order *models.Order) error
	// Update rewrites the order row and replaces its whole item set.
	// debtDelta adjusts the owning customer's outstanding debt by the
	// difference between the new and old totals.
	Update(order *models.Order, debtDelta float64) error
	// UpdateStatus patches the status (and delivery date, when set) in the
	// same transaction as any debt adjustment, so cancelling an unpaid
	// order cannot leave the balance behind.
	UpdateStatus(order *models.Order, status models.OrderStatus, deliveredAt *time.Time, debtDelta float64) error
	Delete(order *models.Order, debtDelta float64) error
	GetByID(id string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByCustomer(customerID uuid.UUID) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return failAt(StageOrder, err)
		}

		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return failAt(StageOrderItems, err)
			}
		}

		// A new unpaid order accrues onto the customer's balance.
		if err := tx.Model(&models.Customer{}).
			Where("id = ?", order.CustomerID).
			Update("outstanding_debt", gorm.Expr("outstanding_debt + ?", order.TotalAmount)).Error; err != nil {
			return failAt(StageCustomerDebt, err)
		}

		return nil
	})
}

func (r *orderRepository) Update(order *models.Order, debtDelta float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(order).Error; err != nil {
			return failAt(StageOrder, err)
		}

		// Replace semantics: drop the old item set wholesale, then insert
		// the new one. An empty list legitimately empties the order.
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return failAt(StageDeleteItems, err)
		}
		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return failAt(StageOrderItems, err)
			}
		}

		if debtDelta != 0 {
			if err := tx.Model(&models.Customer{}).
				Where("id = ?", order.CustomerID).
				Update("outstanding_debt", gorm.Expr("GREATEST(outstanding_debt + ?, 0)", debtDelta)).Error; err != nil {
				return failAt(StageCustomerDebt, err)
			}
		}

		return nil
	})
}

func (r *orderRepository) UpdateStatus(order *models.Order, status models.OrderStatus, deliveredAt *time.Time, debtDelta float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		patch := map[string]interface{}{"status": status}
		if deliveredAt != nil {
			patch["delivery_date"] = *deliveredAt
		}

		result := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(patch)
		if result.Error != nil {
			return failAt(StageOrder, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if debtDelta != 0 {
			if err := tx.Model(&models.Customer{}).
				Where("id = ?", order.CustomerID).
				Update("outstanding_debt", gorm.Expr("GREATEST(outstanding_debt + ?, 0)", debtDelta)).Error; err != nil {
				return failAt(StageCustomerDebt, err)
			}
		}

		return nil
	})
}

func (r *orderRepository) Delete(order *models.Order, debtDelta float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Children first; the store does not cascade.
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return failAt(StageDeleteItems, err)
		}
		if err := tx.Delete(&models.Order{}, "id = ?", order.ID).Error; err != nil {
			return failAt(StageDeleteOrder, err)
		}

		if debtDelta != 0 {
			if err := tx.Model(&models.Customer{}).
				Where("id = ?", order.CustomerID).
				Update("outstanding_debt", gorm.Expr("GREATEST(outstanding_debt + ?, 0)", debtDelta)).Error; err != nil {
				return failAt(StageCustomerDebt, err)
			}
		}

		return nil
	})
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomer(customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
