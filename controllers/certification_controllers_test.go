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

func setupCertificationRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewCertificationController(db, nil)
	router.POST("/certifications", ctrl.CreateCertification)
	router.GET("/certifications", ctrl.GetAllCertifications)
	router.GET("/certifications/contractor/:contractor_id", ctrl.GetCertificationsByContractor)
	router.DELETE("/certifications/:id", ctrl.DeleteCertification)
	return router
}

func TestCreateCertificationUnknownContractor(t *testing.T) {
	db := setupTestDB(t)
	router := setupCertificationRouter(db)

	w := perform(t, router, http.MethodPost, "/certifications", map[string]interface{}{
		"contractor_id": "missing", "week_start_date": "2025-01-06", "amount": 1000,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contractor not found", decode(t, w, nil).Message)

	var count int64
	require.NoError(t, db.Model(&models.Certification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCertificationLifecycle(t *testing.T) {
	db := setupTestDB(t)
	router := setupCertificationRouter(db)

	contractor := models.Contractor{Name: "Obras SRL", WeeklyPayment: 50000, Budget: 100000, IsActive: true}
	require.NoError(t, db.Create(&contractor).Error)

	w := perform(t, router, http.MethodPost, "/certifications", map[string]interface{}{
		"contractor_id": contractor.ID, "week_start_date": "2025-01-06", "amount": 150000, "description": "Losa",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var cert models.Certification
	decode(t, w, &cert)

	var stored models.Contractor
	require.NoError(t, db.First(&stored, "id = ?", contractor.ID).Error)
	assert.Equal(t, -50000.0, stored.RemainingBalance)

	w = perform(t, router, http.MethodGet, "/certifications/contractor/"+contractor.ID, nil)
	var rows []models.Certification
	decode(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "Losa", rows[0].Description)

	w = perform(t, router, http.MethodDelete, "/certifications/"+cert.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&stored, "id = ?", contractor.ID).Error)
	assert.Equal(t, 0.0, stored.TotalPaid)

	w = perform(t, router, http.MethodDelete, "/certifications/"+cert.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Certification not found", decode(t, w, nil).Message)
}
