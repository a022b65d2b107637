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

func setupAdvanceRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewAdvanceController(db, nil)
	router.POST("/advances", ctrl.CreateAdvance)
	router.GET("/advances", ctrl.GetAllAdvances)
	router.GET("/advances/employee/:employee_id", ctrl.GetAdvancesByEmployee)
	router.DELETE("/advances/:id", ctrl.DeleteAdvance)
	return router
}

func TestAdvances(t *testing.T) {
	router := setupAdvanceRouter(setupTestDB(t))

	for _, body := range []map[string]interface{}{
		{"employee_id": "e1", "amount": 500, "date": "2025-01-07", "week_start_date": "2025-01-06"},
		{"employee_id": "e1", "amount": 300, "date": "2025-01-09", "week_start_date": "2025-01-06", "description": "Transporte"},
		{"employee_id": "e2", "amount": 100, "date": "2025-01-08", "week_start_date": "2025-01-06"},
	} {
		w := perform(t, router, http.MethodPost, "/advances", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := perform(t, router, http.MethodGet, "/advances/employee/e1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Advance
	decode(t, w, &mine)
	require.Len(t, mine, 2)
	assert.Equal(t, "2025-01-09", mine[0].Date)
	assert.Equal(t, "Transporte", mine[0].Description)

	w = perform(t, router, http.MethodDelete, "/advances/"+mine[0].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, router, http.MethodDelete, "/advances/"+mine[0].ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Advance not found", decode(t, w, nil).Message)

	w = perform(t, router, http.MethodGet, "/advances", nil)
	var all []models.Advance
	decode(t, w, &all)
	assert.Len(t, all, 2)
}

func TestCreateAdvanceValidation(t *testing.T) {
	router := setupAdvanceRouter(setupTestDB(t))

	w := perform(t, router, http.MethodPost, "/advances", map[string]interface{}{
		"employee_id": "e1", "date": "2025-01-07", "week_start_date": "2025-01-06",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	decode(t, w, &fields)
	assert.Equal(t, map[string]string{"amount": "required"}, fields)
}
