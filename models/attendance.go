package models

import (
	"time"

	"gorm.io/gorm"
)

// Attendance is unique per (employee_id, date). LateHours only counts when
// Status is "late"; NULL values from older rows scan as 0.
type Attendance struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	EmployeeID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date          string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	LateHours     float64   `gorm:"default:0" json:"late_hours"`
	WeekStartDate string    `gorm:"type:varchar(10);not null;index" json:"week_start_date"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	a.ID = newID(a.ID)
	return nil
}

// CountsAsWorked reports whether the day is paid.
func (a Attendance) CountsAsWorked() bool {
	return a.Status == StatusPresent || a.Status == StatusLate
}
