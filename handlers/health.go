package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feastly/utils"
)

// HealthHandler reports the last monitored state of the backing stores.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	// The monitor ticks every minute; before the first tick report ok.
	if !status.CheckedAt.IsZero() && !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status})
}
