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

type EmployeeController struct {
	DB  *gorm.DB
	Hub *hub.Hub
}

func NewEmployeeController(db *gorm.DB, h *hub.Hub) *EmployeeController {
	return &EmployeeController{DB: db, Hub: h}
}

// CreateEmployee -> adds a worker; new employees start active
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		DailySalary *float64 `json:"daily_salary" binding:"required"`
		ProjectID   *string  `json:"project_id"`
		Trade       *string  `json:"trade"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	employee := models.Employee{
		Name:        req.Name,
		DailySalary: *req.DailySalary,
		ProjectID:   emptyToNil(req.ProjectID),
		Trade:       emptyToNil(req.Trade),
		IsActive:    true,
	}
	if err := ec.DB.WithContext(c.Request.Context()).Create(&employee).Error; err != nil {
		respondServiceError(c, "CreateEmployee", err)
		return
	}

	ec.Hub.Broadcast(hub.EventEmployeeUpdate, gin.H{"action": "create", "employee": employee})
	utils.Info(logrus.Fields{"employee_id": employee.ID}).Info("employee created")
	utils.RespondJSON(c, http.StatusCreated, "Employee created successfully", employee)
}

// GetAllEmployees -> every employee, by name
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	var employees []models.Employee
	err := ec.DB.WithContext(c.Request.Context()).
		Order("name ASC").
		Limit(services.MaxListRows).
		Find(&employees).Error
	if err != nil {
		respondServiceError(c, "GetAllEmployees", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of employees", employees)
}

func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	var employee models.Employee
	if err := ec.DB.WithContext(c.Request.Context()).First(&employee, "id = ?", c.Param("id")).Error; err != nil {
		respondServiceError(c, "GetEmployeeByID", lookupError(err, "Employee"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Employee detail", employee)
}

// UpdateEmployee -> partial update; omitted fields keep their value and an
// empty project_id or trade clears it
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	var req struct {
		Name        *string  `json:"name"`
		DailySalary *float64 `json:"daily_salary"`
		ProjectID   *string  `json:"project_id"`
		Trade       *string  `json:"trade"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	db := ec.DB.WithContext(c.Request.Context())
	id := c.Param("id")

	var employee models.Employee
	if err := db.First(&employee, "id = ?", id).Error; err != nil {
		respondServiceError(c, "UpdateEmployee", lookupError(err, "Employee"))
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.DailySalary != nil {
		fields["daily_salary"] = *req.DailySalary
	}
	if req.ProjectID != nil {
		fields["project_id"] = nullable(req.ProjectID)
	}
	if req.Trade != nil {
		fields["trade"] = nullable(req.Trade)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) > 0 {
		if err := db.Model(&employee).Updates(fields).Error; err != nil {
			respondServiceError(c, "UpdateEmployee", err)
			return
		}
		if err := db.First(&employee, "id = ?", id).Error; err != nil {
			respondServiceError(c, "UpdateEmployee", lookupError(err, "Employee"))
			return
		}
	}

	ec.Hub.Broadcast(hub.EventEmployeeUpdate, gin.H{"action": "update", "employee": employee})
	utils.RespondJSON(c, http.StatusOK, "Employee updated successfully", employee)
}

// DeleteEmployee -> hard delete; attendance, advances and history stay behind
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	result := ec.DB.WithContext(c.Request.Context()).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		respondServiceError(c, "DeleteEmployee", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondServiceError(c, "DeleteEmployee", &services.NotFoundError{Entity: "Employee"})
		return
	}

	ec.Hub.Broadcast(hub.EventEmployeeUpdate, gin.H{"action": "delete", "id": id})
	utils.Info(logrus.Fields{"employee_id": id}).Info("employee deleted")
	utils.RespondJSON(c, http.StatusOK, "Employee deleted successfully", gin.H{"id": id})
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// nullable maps an empty string to SQL NULL for map updates.
func nullable(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
