package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/khareetaty/zone_alerting_system/internal/repository"
	"github.com/khareetaty/zone_alerting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	pipeline service.PipelineService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(pipeline service.PipelineService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		pipeline: pipeline,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Trigger a pipeline cycle
// @Description Run resolve, detect, forecast and escalate once. Requires API key.
// @Tags Pipeline
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CycleSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Cycle already in progress"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /pipeline/run [post]
func (h *Handler) runCycle(c *gin.Context) {
	log := h.logger.WithField("method", "runCycle")

	summary, err := h.pipeline.RunCycle(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCycleInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": "pipeline cycle already in progress"})
			return
		}
		log.WithError(err).Error("Pipeline cycle failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pipeline cycle failed"})
		return
	}
	c.JSON(http.StatusOK, SummaryToResponse(summary))
}

// @Summary List alerts
// @Description Get the paginated alert audit trail, optionally filtered by zone and tier. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone_id query int false "Zone ID filter"
// @Param tier query string false "Tier filter" Enums(low, medium, high, critical)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	var zoneID *int64
	if raw := c.Query("zone_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone_id"})
			return
		}
		zoneID = &id
	}
	var tier *models.Tier
	if raw := c.Query("tier"); raw != "" {
		t := models.Tier(raw)
		if t.Rank() < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tier"})
			return
		}
		tier = &t
	}

	alerts, err := h.pipeline.ListAlerts(c.Request.Context(), zoneID, tier, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary List active hotspots
// @Description Get non-superseded hotspots, optionally for one zone. Requires API key.
// @Tags Hotspots
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone_id query int false "Zone ID filter"
// @Success 200 {array} HotspotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotspots")

	var zoneID *int64
	if raw := c.Query("zone_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone_id"})
			return
		}
		zoneID = &id
	}

	hotspots, err := h.pipeline.ListHotspots(c.Request.Context(), zoneID)
	if err != nil {
		log.WithError(err).Error("Failed to list hotspots from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToHotspotResponses(hotspots))
}

// @Summary Get a zone forecast
// @Description Get the active forecast for a zone. Requires API key.
// @Tags Forecasts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone_id path int true "Zone ID"
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active forecast"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /forecasts/{zone_id} [get]
func (h *Handler) getForecast(c *gin.Context) {
	zoneID, err := strconv.ParseInt(c.Param("zone_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "getForecast").WithField("zone_id", zoneID)

	fc, err := h.pipeline.GetForecast(c.Request.Context(), zoneID)
	if err != nil {
		if errors.Is(err, repository.ErrForecastNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active forecast for zone"})
			return
		}
		log.WithError(err).Error("Failed to get forecast from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToForecastResponse(fc))
}

// @Summary List zones at a level
// @Description Get all catalog zones at one hierarchy level. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param level path string true "Zone level" Enums(governorate, district, block, police_zone)
// @Success 200 {array} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid level"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /zones/{level} [get]
func (h *Handler) listZones(c *gin.Context) {
	level := models.ZoneLevel(c.Param("level"))
	if !level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone level"})
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(h.pipeline.ListZones(level)))
}

// @Summary Mute a zone tier
// @Description Force a (zone, tier) pair into cool-down regardless of score. Requires API key.
// @Tags Escalation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param mute body MuteRequest true "Mute request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /escalation/mute [post]
func (h *Handler) muteZoneTier(c *gin.Context) {
	var input MuteRequest
	log := h.logger.WithField("method", "muteZoneTier")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.pipeline.MuteZoneTier(c.Request.Context(), input.ZoneID, models.Tier(input.Tier)); err != nil {
		log.WithError(err).Error("Failed to mute zone tier in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mute zone tier"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get resolution statistics
// @Description Get the rolling geo resolution success rate. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ResolutionStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resolution/stats [get]
func (h *Handler) getResolutionStats(c *gin.Context) {
	log := h.logger.WithField("method", "getResolutionStats")

	rate, attempts, err := h.pipeline.ResolutionStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get resolution stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ResolutionStatsResponse{SuccessRate: rate, Attempts: attempts})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
