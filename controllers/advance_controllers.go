package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

type AdvanceController struct {
	DB  *gorm.DB
	Hub *hub.Hub
}

func NewAdvanceController(db *gorm.DB, h *hub.Hub) *AdvanceController {
	return &AdvanceController{DB: db, Hub: h}
}

// CreateAdvance -> several advances per employee and week are allowed
func (ac *AdvanceController) CreateAdvance(c *gin.Context) {
	var req struct {
		EmployeeID    string   `json:"employee_id" binding:"required"`
		Amount        *float64 `json:"amount" binding:"required"`
		Date          string   `json:"date" binding:"required"`
		Description   string   `json:"description"`
		WeekStartDate string   `json:"week_start_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	advance := models.Advance{
		EmployeeID:    req.EmployeeID,
		Amount:        *req.Amount,
		Date:          req.Date,
		Description:   req.Description,
		WeekStartDate: req.WeekStartDate,
	}
	if err := ac.DB.WithContext(c.Request.Context()).Create(&advance).Error; err != nil {
		respondServiceError(c, "CreateAdvance", err)
		return
	}

	ac.Hub.Broadcast(hub.EventAdvanceUpdate, gin.H{"action": "create", "advance": advance})
	utils.RespondJSON(c, http.StatusCreated, "Advance created successfully", advance)
}

func (ac *AdvanceController) GetAllAdvances(c *gin.Context) {
	var advances []models.Advance
	err := ac.DB.WithContext(c.Request.Context()).
		Order("date DESC").
		Limit(services.MaxWideListRows).
		Find(&advances).Error
	if err != nil {
		respondServiceError(c, "GetAllAdvances", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of advances", advances)
}

func (ac *AdvanceController) GetAdvancesByEmployee(c *gin.Context) {
	var advances []models.Advance
	err := ac.DB.WithContext(c.Request.Context()).
		Where("employee_id = ?", c.Param("employee_id")).
		Order("date DESC").
		Limit(services.MaxListRows).
		Find(&advances).Error
	if err != nil {
		respondServiceError(c, "GetAdvancesByEmployee", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of advances", advances)
}

func (ac *AdvanceController) DeleteAdvance(c *gin.Context) {
	id := c.Param("id")
	result := ac.DB.WithContext(c.Request.Context()).Delete(&models.Advance{}, "id = ?", id)
	if result.Error != nil {
		respondServiceError(c, "DeleteAdvance", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondServiceError(c, "DeleteAdvance", &services.NotFoundError{Entity: "Advance"})
		return
	}

	ac.Hub.Broadcast(hub.EventAdvanceUpdate, gin.H{"action": "delete", "id": id})
	utils.RespondJSON(c, http.StatusOK, "Advance deleted successfully", gin.H{"id": id})
}
