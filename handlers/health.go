package handlers

import (
	"net/http"
	"time"

	"innkeeper/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "innkeeper",
		"checks":    status,
		"timestamp": time.Now().UTC(),
	})
}
