package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

type CertificationInput struct {
	ContractorID  string
	WeekStartDate string
	Amount        float64
	Description   string
}

type CertificationService struct {
	DB     *gorm.DB
	Ledger *Ledger
}

func NewCertificationService(db *gorm.DB) *CertificationService {
	return &CertificationService{DB: db, Ledger: NewLedger(db)}
}

// Create stores the certification and adds its amount to the contractor's
// total_paid. An unknown contractor yields a NotFoundError and writes nothing.
// Amounts above the remaining budget are accepted.
func (s *CertificationService) Create(ctx context.Context, in CertificationInput) (*models.Certification, error) {
	cert := models.Certification{
		ContractorID:  in.ContractorID,
		WeekStartDate: in.WeekStartDate,
		Amount:        in.Amount,
		Description:   in.Description,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Contractor{}).Where("id = ?", in.ContractorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("Contractor")
		}
		if err := tx.Create(&cert).Error; err != nil {
			return err
		}
		_, err := s.Ledger.ApplyCertification(ctx, tx, in.ContractorID, in.Amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// Delete removes the certification and subtracts its amount from the
// contractor's total_paid, floored at zero. A contractor that no longer
// exists is skipped.
func (s *CertificationService) Delete(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cert models.Certification
		if err := tx.First(&cert, "id = ?", id).Error; err != nil {
			return translate(err, "Certification")
		}

		_, err := s.Ledger.ReverseCertification(ctx, tx, cert.ContractorID, cert.Amount)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if errors.Is(err, ErrNotFound) {
			utils.Info(logrus.Fields{
				"certification_id": cert.ID,
				"contractor_id":    cert.ContractorID,
			}).Warn("contractor missing; ledger left untouched")
		}

		return tx.Delete(&models.Certification{}, "id = ?", cert.ID).Error
	})
}

// List returns all certifications, newest created first.
func (s *CertificationService) List(ctx context.Context) ([]models.Certification, error) {
	var rows []models.Certification
	err := s.DB.WithContext(ctx).Order("created_at DESC").Limit(MaxListRows).Find(&rows).Error
	return rows, err
}

// ListByContractor returns one contractor's certifications, latest week first.
func (s *CertificationService) ListByContractor(ctx context.Context, contractorID string) ([]models.Certification, error) {
	var rows []models.Certification
	err := s.DB.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order("week_start_date DESC").
		Order("created_at DESC").
		Limit(MaxListRows).
		Find(&rows).Error
	return rows, err
}
