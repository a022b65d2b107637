package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

// ContractorController serves contractors. Every contractor it returns has
// remaining_balance recomputed from budget and total_paid.
type ContractorController struct {
	DB  *gorm.DB
	Hub *hub.Hub
}

func NewContractorController(db *gorm.DB, h *hub.Hub) *ContractorController {
	return &ContractorController{DB: db, Hub: h}
}

// CreateContractor -> total_paid always starts at 0
func (cc *ContractorController) CreateContractor(c *gin.Context) {
	var req struct {
		Name          string   `json:"name" binding:"required"`
		WeeklyPayment *float64 `json:"weekly_payment" binding:"required"`
		ProjectName   string   `json:"project_name"`
		Budget        *float64 `json:"budget" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	contractor := models.Contractor{
		Name:          req.Name,
		WeeklyPayment: *req.WeeklyPayment,
		ProjectName:   req.ProjectName,
		Budget:        *req.Budget,
		IsActive:      true,
	}
	if err := cc.DB.WithContext(c.Request.Context()).Create(&contractor).Error; err != nil {
		respondServiceError(c, "CreateContractor", err)
		return
	}
	contractor.Normalize()

	cc.Hub.Broadcast(hub.EventContractorUpdate, gin.H{"action": "create", "contractor": contractor})
	utils.Info(logrus.Fields{"contractor_id": contractor.ID, "budget": contractor.Budget}).Info("contractor created")
	utils.RespondJSON(c, http.StatusCreated, "Contractor created successfully", contractor)
}

func (cc *ContractorController) GetAllContractors(c *gin.Context) {
	var contractors []models.Contractor
	err := cc.DB.WithContext(c.Request.Context()).
		Order("name ASC").
		Limit(services.MaxListRows).
		Find(&contractors).Error
	if err != nil {
		respondServiceError(c, "GetAllContractors", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of contractors", contractors)
}

func (cc *ContractorController) GetContractorByID(c *gin.Context) {
	var contractor models.Contractor
	if err := cc.DB.WithContext(c.Request.Context()).First(&contractor, "id = ?", c.Param("id")).Error; err != nil {
		respondServiceError(c, "GetContractorByID", lookupError(err, "Contractor"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Contractor detail", contractor)
}

// UpdateContractor -> partial update; total_paid only moves through the ledger
func (cc *ContractorController) UpdateContractor(c *gin.Context) {
	var req struct {
		Name          *string  `json:"name"`
		WeeklyPayment *float64 `json:"weekly_payment"`
		ProjectName   *string  `json:"project_name"`
		Budget        *float64 `json:"budget"`
		IsActive      *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	db := cc.DB.WithContext(c.Request.Context())
	id := c.Param("id")

	var contractor models.Contractor
	if err := db.First(&contractor, "id = ?", id).Error; err != nil {
		respondServiceError(c, "UpdateContractor", lookupError(err, "Contractor"))
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.WeeklyPayment != nil {
		fields["weekly_payment"] = *req.WeeklyPayment
	}
	if req.ProjectName != nil {
		fields["project_name"] = *req.ProjectName
	}
	if req.Budget != nil {
		fields["budget"] = *req.Budget
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) > 0 {
		if err := db.Model(&models.Contractor{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			respondServiceError(c, "UpdateContractor", err)
			return
		}
		if err := db.First(&contractor, "id = ?", id).Error; err != nil {
			respondServiceError(c, "UpdateContractor", lookupError(err, "Contractor"))
			return
		}
	}

	cc.Hub.Broadcast(hub.EventContractorUpdate, gin.H{"action": "update", "contractor": contractor})
	utils.RespondJSON(c, http.StatusOK, "Contractor updated successfully", contractor)
}

// DeleteContractor -> its certifications are left in place
func (cc *ContractorController) DeleteContractor(c *gin.Context) {
	id := c.Param("id")
	result := cc.DB.WithContext(c.Request.Context()).Delete(&models.Contractor{}, "id = ?", id)
	if result.Error != nil {
		respondServiceError(c, "DeleteContractor", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondServiceError(c, "DeleteContractor", &services.NotFoundError{Entity: "Contractor"})
		return
	}

	cc.Hub.Broadcast(hub.EventContractorUpdate, gin.H{"action": "delete", "id": id})
	utils.RespondJSON(c, http.StatusOK, "Contractor deleted successfully", gin.H{"id": id})
}
