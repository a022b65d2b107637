package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/utils"
)

// LiveHandler -> websocket endpoint for dashboard clients
func LiveHandler(h *hub.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Serve(c.Writer, c.Request); err != nil {
			utils.LogError("controllers", "LiveHandler", "upgrade", c.ClientIP(), err)
		}
	}
}
