package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

// Ledger maintains a contractor's total_paid. Each mutation is a
// read-modify-write of one row and is not serialized across requests.
type Ledger struct {
	DB *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// AddToTotal applies a payment; there is no upper bound.
func AddToTotal(totalPaid, amount float64) float64 {
	return decimal.NewFromFloat(totalPaid).Add(decimal.NewFromFloat(amount)).InexactFloat64()
}

// SubtractFromTotal reverses a payment, floored at zero.
func SubtractFromTotal(totalPaid, amount float64) float64 {
	result := decimal.NewFromFloat(totalPaid).Sub(decimal.NewFromFloat(amount))
	if result.IsNegative() {
		return 0
	}
	return result.InexactFloat64()
}

// ApplyCertification adds amount to the contractor's total_paid.
func (l *Ledger) ApplyCertification(ctx context.Context, tx *gorm.DB, contractorID string, amount float64) (*models.Contractor, error) {
	return l.mutate(ctx, tx, contractorID, "apply_certification", amount, AddToTotal)
}

// ReverseCertification subtracts amount from total_paid, never going below zero.
func (l *Ledger) ReverseCertification(ctx context.Context, tx *gorm.DB, contractorID string, amount float64) (*models.Contractor, error) {
	return l.mutate(ctx, tx, contractorID, "reverse_certification", amount, SubtractFromTotal)
}

// ApplyWeeklyPayment adds the contractor's weekly payment to total_paid.
func (l *Ledger) ApplyWeeklyPayment(ctx context.Context, tx *gorm.DB, contractorID string, weeklyPayment float64) (*models.Contractor, error) {
	return l.mutate(ctx, tx, contractorID, "apply_weekly_payment", weeklyPayment, AddToTotal)
}

func (l *Ledger) mutate(ctx context.Context, tx *gorm.DB, contractorID, action string, amount float64, op func(float64, float64) float64) (*models.Contractor, error) {
	if tx == nil {
		tx = l.DB
	}
	tx = tx.WithContext(ctx)

	var contractor models.Contractor
	if err := tx.First(&contractor, "id = ?", contractorID).Error; err != nil {
		return nil, translate(err, "Contractor")
	}

	before := contractor.TotalPaid
	contractor.TotalPaid = op(contractor.TotalPaid, amount)
	if err := tx.Model(&models.Contractor{}).
		Where("id = ?", contractorID).
		Update("total_paid", contractor.TotalPaid).Error; err != nil {
		return nil, err
	}
	contractor.Normalize()

	utils.Info(logrus.Fields{
		"contractor_id": contractorID,
		"action":        action,
		"amount":        amount,
		"total_before":  before,
		"total_after":   contractor.TotalPaid,
	}).Info("contractor ledger updated")

	return &contractor, nil
}
