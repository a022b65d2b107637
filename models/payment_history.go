package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentHistory is an append-only snapshot of one employee's weekly pay.
type PaymentHistory struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	EmployeeID    string    `gorm:"type:varchar(36);not null;index" json:"employee_id"`
	WeekStartDate string    `gorm:"type:varchar(10);not null;index" json:"week_start_date"`
	DaysWorked    int       `gorm:"not null" json:"days_worked"`
	TotalSalary   float64   `gorm:"not null" json:"total_salary"`
	TotalAdvances float64   `gorm:"not null" json:"total_advances"`
	NetPayment    float64   `gorm:"not null" json:"net_payment"`
	PaidAt        time.Time `gorm:"not null;index" json:"paid_at"`
}

func (p *PaymentHistory) BeforeCreate(tx *gorm.DB) error {
	p.ID = newID(p.ID)
	return nil
}
