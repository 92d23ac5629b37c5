package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the standard error envelope: {message, statusCode}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message":    message,
		"statusCode": statusCode,
	})
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"message":    message,
		"statusCode": statusCode,
	})
}

// ValidationError aggregates one message per violated field.
func ValidationError(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message":    "Validation error",
		"statusCode": http.StatusBadRequest,
		"errors":     errs,
	})
}
