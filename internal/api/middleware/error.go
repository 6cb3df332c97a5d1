package middleware

import (
	"net/http"

	"bond-yield/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers handler panics and responds with the same
// {error:{code,message}} envelope the handlers use.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
