package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Everything except the health
// check requires an API key.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	protected.POST("/pipeline/run", h.runCycle)

	protected.GET("/alerts", h.listAlerts)
	protected.GET("/hotspots", h.listHotspots)
	protected.GET("/forecasts/:zone_id", h.getForecast)
	protected.GET("/zones/:level", h.listZones)

	protected.POST("/escalation/mute", h.muteZoneTier)
	protected.GET("/resolution/stats", h.getResolutionStats)
}
