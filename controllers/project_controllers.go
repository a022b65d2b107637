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

type ProjectController struct {
	DB  *gorm.DB
	Hub *hub.Hub
}

func NewProjectController(db *gorm.DB, h *hub.Hub) *ProjectController {
	return &ProjectController{DB: db, Hub: h}
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		StartDate   string `json:"start_date" binding:"required"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		IsActive:    true,
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	if err := pc.DB.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		respondServiceError(c, "CreateProject", err)
		return
	}

	pc.Hub.Broadcast(hub.EventProjectUpdate, gin.H{"action": "create", "project": project})
	utils.RespondJSON(c, http.StatusCreated, "Project created successfully", project)
}

func (pc *ProjectController) GetAllProjects(c *gin.Context) {
	var projects []models.Project
	err := pc.DB.WithContext(c.Request.Context()).
		Order("name ASC").
		Limit(services.MaxListRows).
		Find(&projects).Error
	if err != nil {
		respondServiceError(c, "GetAllProjects", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of projects", projects)
}

func (pc *ProjectController) GetProjectByID(c *gin.Context) {
	var project models.Project
	if err := pc.DB.WithContext(c.Request.Context()).First(&project, "id = ?", c.Param("id")).Error; err != nil {
		respondServiceError(c, "GetProjectByID", lookupError(err, "Project"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Project detail", project)
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		StartDate   *string `json:"start_date"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	db := pc.DB.WithContext(c.Request.Context())
	id := c.Param("id")

	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		respondServiceError(c, "UpdateProject", lookupError(err, "Project"))
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) > 0 {
		if err := db.Model(&project).Updates(fields).Error; err != nil {
			respondServiceError(c, "UpdateProject", err)
			return
		}
		if err := db.First(&project, "id = ?", id).Error; err != nil {
			respondServiceError(c, "UpdateProject", lookupError(err, "Project"))
			return
		}
	}

	pc.Hub.Broadcast(hub.EventProjectUpdate, gin.H{"action": "update", "project": project})
	utils.RespondJSON(c, http.StatusOK, "Project updated successfully", project)
}

// DeleteProject -> employees keep their project_id and fall into the unassigned bucket
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	result := pc.DB.WithContext(c.Request.Context()).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		respondServiceError(c, "DeleteProject", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondServiceError(c, "DeleteProject", &services.NotFoundError{Entity: "Project"})
		return
	}

	pc.Hub.Broadcast(hub.EventProjectUpdate, gin.H{"action": "delete", "id": id})
	utils.RespondJSON(c, http.StatusOK, "Project deleted successfully", gin.H{"id": id})
}
