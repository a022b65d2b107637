package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/payroll-app/models"
	"gorm.io/gorm"
)

type AttendanceInput struct {
	EmployeeID    string
	Date          string
	Status        string
	LateHours     float64
	WeekStartDate string
}

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// Record keeps at most one row per (employee_id, date). An existing row gets
// its status and late_hours overwritten in place; id and week_start_date stay.
// The returned bool is true when a new row was created.
func (s *AttendanceService) Record(ctx context.Context, in AttendanceInput) (*models.Attendance, bool, error) {
	db := s.DB.WithContext(ctx)

	var existing models.Attendance
	err := db.Where("employee_id = ? AND date = ?", in.EmployeeID, in.Date).First(&existing).Error
	switch {
	case err == nil:
		if err := db.Model(&existing).Updates(map[string]interface{}{
			"status":     in.Status,
			"late_hours": in.LateHours,
		}).Error; err != nil {
			return nil, false, err
		}
		var updated models.Attendance
		if err := db.First(&updated, "id = ?", existing.ID).Error; err != nil {
			return nil, false, err
		}
		return &updated, false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, err
	}

	attendance := models.Attendance{
		EmployeeID:    in.EmployeeID,
		Date:          in.Date,
		Status:        in.Status,
		LateHours:     in.LateHours,
		WeekStartDate: in.WeekStartDate,
	}
	if err := db.Create(&attendance).Error; err != nil {
		return nil, false, err
	}
	return &attendance, true, nil
}

func (s *AttendanceService) List(ctx context.Context) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := s.DB.WithContext(ctx).Order("date DESC").Limit(MaxWideListRows).Find(&rows).Error
	return rows, err
}

func (s *AttendanceService) ListByWeek(ctx context.Context, weekStart string) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := s.DB.WithContext(ctx).
		Where("week_start_date = ?", weekStart).
		Order("date ASC").
		Limit(MaxWideListRows).
		Find(&rows).Error
	return rows, err
}
