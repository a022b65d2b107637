package models

import (
	"time"

	"gorm.io/gorm"
)

// Contractor carries a running ledger against its budget. RemainingBalance is
// never read from storage; Normalize derives it from Budget and TotalPaid.
type Contractor struct {
	ID               string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	WeeklyPayment    float64   `gorm:"not null" json:"weekly_payment"`
	ProjectName      string    `gorm:"type:varchar(255)" json:"project_name"`
	Budget           float64   `gorm:"not null" json:"budget"`
	TotalPaid        float64   `gorm:"not null;default:0" json:"total_paid"`
	RemainingBalance float64   `gorm:"-" json:"remaining_balance"`
	IsActive         bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `json:"-"`
}

func (c *Contractor) BeforeCreate(tx *gorm.DB) error {
	c.ID = newID(c.ID)
	return nil
}

// AfterFind backfills defaults on every load so older rows read the same as new ones.
func (c *Contractor) AfterFind(tx *gorm.DB) error {
	c.Normalize()
	return nil
}

func (c *Contractor) Normalize() {
	if c.ProjectName == "" {
		c.ProjectName = UnassignedLabel
	}
	c.RemainingBalance = c.Budget - c.TotalPaid
}
