package models

import (
	"time"

	"gorm.io/gorm"
)

type Advance struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	EmployeeID    string    `gorm:"type:varchar(36);not null;index" json:"employee_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Date          string    `gorm:"type:varchar(10);not null" json:"date"`
	Description   string    `gorm:"type:text" json:"description"`
	WeekStartDate string    `gorm:"type:varchar(10);not null;index" json:"week_start_date"`
	CreatedAt     time.Time `json:"-"`
}

func (a *Advance) BeforeCreate(tx *gorm.DB) error {
	a.ID = newID(a.ID)
	return nil
}
