package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies use the flat shape the desktop clients parse:
//   {"error": "..."}                    for rejected requests
//   {"success": false, "error": "..."}  for failed generations

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func GenerationFailed(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
}
