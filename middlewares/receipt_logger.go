package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/utils"
)

// DownloadLogger records every generated receipt or spreadsheet for a week.
func DownloadLogger(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		fields := logrus.Fields{
			"kind":       kind,
			"week_start": c.Param("week_start"),
			"status":     c.Writer.Status(),
			"bytes":      c.Writer.Size(),
		}
		if c.Writer.Status() == 200 {
			utils.Info(fields).Info("document generated")
		} else {
			utils.Info(fields).Warn("document not generated")
		}
	}
}
