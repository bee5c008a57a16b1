package handlers

import (
	"net/http"

	"crownbeauty/utils"

	"github.com/gin-gonic/gin"
)

// GetHealth handles GET /health with the latest dependency snapshot.
func GetHealth(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{
		"status":  state,
		"message": "Hi, I'm Crown Nail & Beauty",
		"checks":  status,
	})
}
