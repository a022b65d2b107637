package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondValidation answers 400 with a field -> rule map when err came from binding.
func RespondValidation(c *gin.Context, err error) {
	fields := ValidationErrors(err)
	if len(fields) == 0 {
		RespondError(c, 400, err)
		return
	}
	c.JSON(400, JSONResponse{
		Status:  false,
		Message: "invalid request payload",
		Data:    fields,
	})
}
