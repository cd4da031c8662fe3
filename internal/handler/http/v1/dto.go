package v1

import (
	"time"

	"github.com/google/uuid"
)

// ZoneResponse DTO for one catalog zone
// @Description DTO for one catalog zone
type ZoneResponse struct {
	ID       int64   `json:"id"`
	Level    string  `json:"level"`
	ParentID *int64  `json:"parent_id,omitempty"`
	NameEn   string  `json:"name_en"`
	NameAr   string  `json:"name_ar"`
	Covers   []int64 `json:"covers,omitempty"`
}

// HotspotResponse DTO for an active hotspot
// @Description DTO for an active hotspot
type HotspotResponse struct {
	ID            uuid.UUID `json:"id"`
	ZoneID        int64     `json:"zone_id"`
	CentroidLat   float64   `json:"centroid_lat"`
	CentroidLon   float64   `json:"centroid_lon"`
	IncidentCount int       `json:"incident_count"`
	Score         float64   `json:"score"`
	DetectedAt    time.Time `json:"detected_at"`
	Predicted     bool      `json:"predicted"`
}

// ForecastResponse DTO for a zone forecast
// @Description DTO for a zone forecast
type ForecastResponse struct {
	ID             uuid.UUID `json:"id"`
	ZoneID         int64     `json:"zone_id"`
	HorizonStart   time.Time `json:"horizon_start"`
	HorizonEnd     time.Time `json:"horizon_end"`
	PredictedCount float64   `json:"predicted_count"`
	IntervalWidth  float64   `json:"interval_width"`
	BucketCount    int       `json:"bucket_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// DispatchResponse DTO for one channel delivery outcome
// @Description DTO for one channel delivery outcome
type DispatchResponse struct {
	Channel      string    `json:"channel"`
	Recipient    string    `json:"recipient"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

// AlertResponse DTO for one alert audit record
// @Description DTO for one alert audit record
type AlertResponse struct {
	ID                    uuid.UUID          `json:"id"`
	ZoneID                int64              `json:"zone_id"`
	Tier                  string             `json:"tier"`
	HotspotID             *uuid.UUID         `json:"hotspot_id,omitempty"`
	ForecastID            *uuid.UUID         `json:"forecast_id,omitempty"`
	Message               string             `json:"message"`
	Suppressed            bool               `json:"suppressed"`
	SuppressedDuplicateOf *uuid.UUID         `json:"suppressed_duplicate_of,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	Dispatches            []DispatchResponse `json:"dispatches,omitempty"`
}

// CycleSummaryResponse DTO for the result of a pipeline run
// @Description DTO for the result of a pipeline run
type CycleSummaryResponse struct {
	StartedAt        time.Time `json:"started_at"`
	DurationMs       int64     `json:"duration_ms"`
	IncidentsFetched int       `json:"incidents_fetched"`
	Resolved         int       `json:"resolved"`
	ResolveFailed    int       `json:"resolve_failed"`
	SuccessRate      float64   `json:"success_rate"`
	ZonesProcessed   int       `json:"zones_processed"`
	Hotspots         int       `json:"hotspots"`
	Forecasts        int       `json:"forecasts"`
	ForecastsSkipped int       `json:"forecasts_skipped"`
	AlertsFired      int       `json:"alerts_fired"`
	AlertsSuppressed int       `json:"alerts_suppressed"`
}

// MuteRequest DTO for muting a (zone, tier) pair
// @Description DTO for muting a (zone, tier) pair
type MuteRequest struct {
	ZoneID int64  `json:"zone_id" validate:"required"`
	Tier   string `json:"tier" validate:"required,oneof=low medium high critical"`
}

// ResolutionStatsResponse DTO for resolution success-rate statistics
// @Description DTO for resolution success-rate statistics
type ResolutionStatsResponse struct {
	SuccessRate float64 `json:"success_rate"`
	Attempts    int     `json:"attempts"`
}
