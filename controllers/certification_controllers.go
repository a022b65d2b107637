package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

type CertificationController struct {
	Service *services.CertificationService
	Hub     *hub.Hub
}

func NewCertificationController(db *gorm.DB, h *hub.Hub) *CertificationController {
	return &CertificationController{Service: services.NewCertificationService(db), Hub: h}
}

// CreateCertification -> 404 when the contractor does not exist; amounts over
// the remaining budget are accepted
func (cc *CertificationController) CreateCertification(c *gin.Context) {
	var req struct {
		ContractorID  string   `json:"contractor_id" binding:"required"`
		WeekStartDate string   `json:"week_start_date" binding:"required"`
		Amount        *float64 `json:"amount" binding:"required"`
		Description   string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	cert, err := cc.Service.Create(c.Request.Context(), services.CertificationInput{
		ContractorID:  req.ContractorID,
		WeekStartDate: req.WeekStartDate,
		Amount:        *req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		respondServiceError(c, "CreateCertification", err)
		return
	}

	cc.Hub.Broadcast(hub.EventCertificationUpdate, gin.H{"action": "create", "certification": cert})
	utils.RespondJSON(c, http.StatusCreated, "Certification created successfully", cert)
}

func (cc *CertificationController) GetAllCertifications(c *gin.Context) {
	rows, err := cc.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetAllCertifications", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of certifications", rows)
}

func (cc *CertificationController) GetCertificationsByContractor(c *gin.Context) {
	rows, err := cc.Service.ListByContractor(c.Request.Context(), c.Param("contractor_id"))
	if err != nil {
		respondServiceError(c, "GetCertificationsByContractor", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of certifications", rows)
}

// DeleteCertification -> takes the amount back off the contractor's total_paid
func (cc *CertificationController) DeleteCertification(c *gin.Context) {
	id := c.Param("id")
	if err := cc.Service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, "DeleteCertification", err)
		return
	}

	cc.Hub.Broadcast(hub.EventCertificationUpdate, gin.H{"action": "delete", "id": id})
	utils.RespondJSON(c, http.StatusOK, "Certification deleted successfully", gin.H{"id": id})
}
