package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/payroll-app/controllers"
	"github.com/yeremiapane/payroll-app/models"
	"gorm.io/gorm"
)

func setupAttendanceRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewAttendanceController(db, nil)
	router.POST("/attendance", ctrl.RecordAttendance)
	router.GET("/attendance", ctrl.GetAllAttendance)
	router.GET("/attendance/week/:week_start", ctrl.GetAttendanceByWeek)
	return router
}

func TestRecordAttendanceUpsert(t *testing.T) {
	db := setupTestDB(t)
	router := setupAttendanceRouter(db)

	w := perform(t, router, http.MethodPost, "/attendance", map[string]interface{}{
		"employee_id": "e1", "date": "2025-01-07", "status": "late", "late_hours": 2, "week_start_date": "2025-01-06",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Attendance
	decode(t, w, &created)

	w = perform(t, router, http.MethodPost, "/attendance", map[string]interface{}{
		"employee_id": "e1", "date": "2025-01-07", "status": "present", "week_start_date": "2025-01-13",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Attendance
	env := decode(t, w, &updated)
	assert.Equal(t, "Attendance updated", env.Message)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "present", updated.Status)
	assert.Equal(t, 0.0, updated.LateHours)
	assert.Equal(t, "2025-01-06", updated.WeekStartDate)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAttendanceByWeek(t *testing.T) {
	db := setupTestDB(t)
	router := setupAttendanceRouter(db)

	for _, a := range []models.Attendance{
		{EmployeeID: "e1", Date: "2025-01-08", Status: "present", WeekStartDate: "2025-01-06"},
		{EmployeeID: "e1", Date: "2025-01-06", Status: "present", WeekStartDate: "2025-01-06"},
		{EmployeeID: "e1", Date: "2025-01-13", Status: "absent", WeekStartDate: "2025-01-13"},
	} {
		a := a
		require.NoError(t, db.Create(&a).Error)
	}

	w := perform(t, router, http.MethodGet, "/attendance/week/2025-01-06", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []models.Attendance
	decode(t, w, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01-06", rows[0].Date)
	assert.Equal(t, "2025-01-08", rows[1].Date)

	w = perform(t, router, http.MethodGet, "/attendance/week/next-monday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordAttendanceValidation(t *testing.T) {
	router := setupAttendanceRouter(setupTestDB(t))

	w := perform(t, router, http.MethodPost, "/attendance", map[string]interface{}{"employee_id": "e1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	decode(t, w, &fields)
	assert.Equal(t, "required", fields["date"])
	assert.Equal(t, "required", fields["status"])
	assert.Equal(t, "required", fields["week_start_date"])
}
