package models

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   string    `gorm:"type:varchar(10)" json:"start_date"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	p.ID = newID(p.ID)
	return nil
}
