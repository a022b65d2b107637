package middlewares

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddlewares allows the given origins; an empty list or "*" allows any origin.
func CORSMiddlewares(origins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if allowAll(origins) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	config.AddAllowMethods("PATCH")
	config.AddAllowHeaders("Authorization", "Cache-Control", "X-Requested-With")
	config.AddExposeHeaders("Content-Length", "Content-Disposition")
	return cors.New(config)
}

func allowAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
