package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/cache"
	"github.com/yeremiapane/payroll-app/utils"
)

// InvalidateDashboard drops cached dashboard snapshots after any successful write.
func InvalidateDashboard(store cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		if err := cache.InvalidateDashboard(c.Request.Context(), store); err != nil {
			utils.LogError("middlewares", "InvalidateDashboard", c.Request.Method+" "+c.FullPath(), nil, err)
		}
	}
}
