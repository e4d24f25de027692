package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the standard error payload.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorResponseWithDetails additionally carries the underlying failure
// description, used by the chat endpoint.
func ErrorResponseWithDetails(c *gin.Context, statusCode int, message string, details string) {
	c.JSON(statusCode, gin.H{"error": message, "details": details})
}
