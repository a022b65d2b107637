package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	DailySalary float64   `gorm:"not null" json:"daily_salary"`
	ProjectID   *string   `gorm:"type:varchar(36);index" json:"project_id"`
	Trade       *string   `gorm:"type:varchar(100)" json:"trade"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	e.ID = newID(e.ID)
	return nil
}
