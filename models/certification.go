package models

import (
	"time"

	"gorm.io/gorm"
)

// Certification is an ad-hoc payment to a contractor, applied against its budget.
type Certification struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ContractorID  string    `gorm:"type:varchar(36);not null;index" json:"contractor_id"`
	WeekStartDate string    `gorm:"type:varchar(10);not null" json:"week_start_date"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	c.ID = newID(c.ID)
	return nil
}
