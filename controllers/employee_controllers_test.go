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

func setupEmployeeRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	ctrl := controllers.NewEmployeeController(db, nil)
	router.POST("/employees", ctrl.CreateEmployee)
	router.GET("/employees", ctrl.GetAllEmployees)
	router.GET("/employees/:id", ctrl.GetEmployeeByID)
	router.PUT("/employees/:id", ctrl.UpdateEmployee)
	router.DELETE("/employees/:id", ctrl.DeleteEmployee)
	return router
}

func TestCreateEmployee(t *testing.T) {
	router := setupEmployeeRouter(setupTestDB(t))

	w := perform(t, router, http.MethodPost, "/employees", map[string]interface{}{
		"name": "Ana", "daily_salary": 8000, "trade": "Albañil",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var employee models.Employee
	env := decode(t, w, &employee)
	assert.True(t, env.Status)
	assert.Equal(t, "Employee created successfully", env.Message)
	assert.NotEmpty(t, employee.ID)
	assert.True(t, employee.IsActive)
	assert.Nil(t, employee.ProjectID)
	require.NotNil(t, employee.Trade)
	assert.Equal(t, "Albañil", *employee.Trade)
}

func TestCreateEmployeeValidation(t *testing.T) {
	router := setupEmployeeRouter(setupTestDB(t))

	w := perform(t, router, http.MethodPost, "/employees", map[string]interface{}{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	env := decode(t, w, &fields)
	assert.False(t, env.Status)
	assert.Equal(t, map[string]string{"daily_salary": "required"}, fields)
}

func TestUpdateEmployeePartial(t *testing.T) {
	db := setupTestDB(t)
	router := setupEmployeeRouter(db)

	project := "p-1"
	employee := models.Employee{Name: "Ana", DailySalary: 8000, ProjectID: &project, IsActive: true}
	require.NoError(t, db.Create(&employee).Error)

	w := perform(t, router, http.MethodPut, "/employees/"+employee.ID, map[string]interface{}{
		"daily_salary": 9000, "is_active": false, "project_id": "",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Employee
	decode(t, w, &updated)
	assert.Equal(t, employee.ID, updated.ID)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, 9000.0, updated.DailySalary)
	assert.False(t, updated.IsActive)
	assert.Nil(t, updated.ProjectID)
}

func TestEmployeeNotFound(t *testing.T) {
	router := setupEmployeeRouter(setupTestDB(t))

	for _, tc := range []struct {
		method string
		body   interface{}
	}{
		{http.MethodGet, nil},
		{http.MethodPut, map[string]interface{}{"name": "x"}},
		{http.MethodDelete, nil},
	} {
		t.Run(tc.method, func(t *testing.T) {
			w := perform(t, router, tc.method, "/employees/missing", tc.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Employee not found", decode(t, w, nil).Message)
		})
	}
}

func TestDeleteEmployee(t *testing.T) {
	db := setupTestDB(t)
	router := setupEmployeeRouter(db)

	employee := models.Employee{Name: "Ana", DailySalary: 8000, IsActive: true}
	require.NoError(t, db.Create(&employee).Error)
	require.NoError(t, db.Create(&models.Advance{EmployeeID: employee.ID, Amount: 100, Date: "2025-01-06", WeekStartDate: "2025-01-06"}).Error)

	w := perform(t, router, http.MethodDelete, "/employees/"+employee.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, router, http.MethodGet, "/employees", nil)
	var employees []models.Employee
	decode(t, w, &employees)
	assert.Empty(t, employees)

	var advances int64
	require.NoError(t, db.Model(&models.Advance{}).Count(&advances).Error)
	assert.Equal(t, int64(1), advances)
}
