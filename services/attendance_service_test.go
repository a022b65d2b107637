package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/payroll-app/models"
)

func TestRecordAttendanceUpsertsInPlace(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewAttendanceService(db)

	first, created, err := svc.Record(ctx, AttendanceInput{
		EmployeeID:    "emp-1",
		Date:          "2025-01-07",
		Status:        models.StatusPresent,
		WeekStartDate: "2025-01-06",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0.0, first.LateHours)

	second, created, err := svc.Record(ctx, AttendanceInput{
		EmployeeID:    "emp-1",
		Date:          "2025-01-07",
		Status:        models.StatusLate,
		LateHours:     2,
		WeekStartDate: "2025-01-13",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.StatusLate, second.Status)
	assert.Equal(t, 2.0, second.LateHours)
	assert.Equal(t, "2025-01-06", second.WeekStartDate)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Where("employee_id = ? AND date = ?", "emp-1", "2025-01-07").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordAttendanceAcceptsAnyStatus(t *testing.T) {
	db := setupTestDB(t)
	row, created, err := NewAttendanceService(db).Record(context.Background(), AttendanceInput{
		EmployeeID:    "emp-2",
		Date:          "2025-01-08",
		Status:        "holiday",
		WeekStartDate: "2025-01-06",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "holiday", row.Status)
}

func TestListAttendanceByWeek(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewAttendanceService(db)

	for _, in := range []AttendanceInput{
		{EmployeeID: "e", Date: "2025-01-07", Status: "present", WeekStartDate: "2025-01-06"},
		{EmployeeID: "e", Date: "2025-01-06", Status: "present", WeekStartDate: "2025-01-06"},
		{EmployeeID: "e", Date: "2025-01-14", Status: "absent", WeekStartDate: "2025-01-13"},
	} {
		_, _, err := svc.Record(ctx, in)
		require.NoError(t, err)
	}

	rows, err := svc.ListByWeek(ctx, "2025-01-06")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01-06", rows[0].Date)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
