package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the flat error body every endpoint uses.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Conflict writes a rental admission rejection together with the window of
// the booking that caused it, so the caller can explain the refusal.
func Conflict(c *gin.Context, message string, conflicting any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":             message,
		"conflictingRental": conflicting,
	})
}

// Message writes a plain confirmation body for deletes and similar actions.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ValidationFailed writes a 400 with per-field validation details.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}
