package repository

import (
	"time"

	"cleanpro-backend/models"

	"gorm.io/gorm"
)

type BillingRepository interface {
	// RecordPayment inserts the payment, shrinks the customer's outstanding
	// debt and, when the amount covers the order total, flips the order to
	// paid. One transaction; the decrement happens at the store so two
	// concurrent payments cannot lose an update, and the balance is floored
	// at zero.
	RecordPayment(payment *models.Payment, coversTotal bool) error
	Debtors() ([]models.Customer, error)
	PaymentsBetween(start, end time.Time) ([]models.Payment, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) RecordPayment(payment *models.Payment, coversTotal bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return failAt(StagePayment, err)
		}

		if err := tx.Model(&models.Customer{}).
			Where("id = ?", payment.CustomerID).
			Update("outstanding_debt", gorm.Expr("GREATEST(outstanding_debt - ?, 0)", payment.Amount)).Error; err != nil {
			return failAt(StageCustomerDebt, err)
		}

		if coversTotal {
			if err := tx.Model(&models.Order{}).
				Where("id = ?", payment.OrderID).
				Update("payment_status", models.PaymentPaid).Error; err != nil {
				return failAt(StageOrder, err)
			}
		}

		return nil
	})
}

func (r *billingRepository) Debtors() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("outstanding_debt > 0").
		Order("outstanding_debt DESC").
		Find(&customers).Error
	return customers, err
}

func (r *billingRepository) PaymentsBetween(start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("paid_at >= ? AND paid_at < ?", start, end).
		Order("paid_at DESC").
		Find(&payments).Error
	return payments, err
}
