package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

type AttendanceController struct {
	Service *services.AttendanceService
	Hub     *hub.Hub
}

func NewAttendanceController(db *gorm.DB, h *hub.Hub) *AttendanceController {
	return &AttendanceController{Service: services.NewAttendanceService(db), Hub: h}
}

// RecordAttendance -> creates the (employee, date) row or overwrites it in place.
// Status is stored as given.
func (ac *AttendanceController) RecordAttendance(c *gin.Context) {
	var req struct {
		EmployeeID    string  `json:"employee_id" binding:"required"`
		Date          string  `json:"date" binding:"required"`
		Status        string  `json:"status" binding:"required"`
		LateHours     float64 `json:"late_hours"`
		WeekStartDate string  `json:"week_start_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	attendance, created, err := ac.Service.Record(c.Request.Context(), services.AttendanceInput{
		EmployeeID:    req.EmployeeID,
		Date:          req.Date,
		Status:        req.Status,
		LateHours:     req.LateHours,
		WeekStartDate: req.WeekStartDate,
	})
	if err != nil {
		respondServiceError(c, "RecordAttendance", err)
		return
	}

	ac.Hub.Broadcast(hub.EventAttendanceUpdate, attendance)
	if created {
		utils.RespondJSON(c, http.StatusCreated, "Attendance recorded", attendance)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Attendance updated", attendance)
}

func (ac *AttendanceController) GetAllAttendance(c *gin.Context) {
	rows, err := ac.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetAllAttendance", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of attendance", rows)
}

func (ac *AttendanceController) GetAttendanceByWeek(c *gin.Context) {
	weekStart, ok := weekStartParam(c)
	if !ok {
		return
	}
	rows, err := ac.Service.ListByWeek(c.Request.Context(), weekStart)
	if err != nil {
		respondServiceError(c, "GetAttendanceByWeek", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Attendance for week "+weekStart, rows)
}
