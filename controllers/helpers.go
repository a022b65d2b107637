package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

// lookupError turns a missing row into the entity's NotFoundError.
func lookupError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &services.NotFoundError{Entity: entity}
	}
	return err
}

// respondServiceError answers 404 for NotFoundError and 500 for everything else.
func respondServiceError(c *gin.Context, funcName string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.LogError("controllers", funcName, c.Request.Method+" "+c.FullPath(), nil, err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}

func weekStartParam(c *gin.Context) (string, bool) {
	weekStart := c.Param("week_start")
	if !utils.IsDate(weekStart) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("week_start must be a YYYY-MM-DD date"))
		return "", false
	}
	return weekStart, true
}
