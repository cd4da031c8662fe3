package v1

import (
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/khareetaty/zone_alerting_system/internal/service"
)

// ModelToZoneResponse converts a catalog zone to its DTO. Polygon geometry
// is deliberately not exposed here.
func ModelToZoneResponse(model models.Zone) ZoneResponse {
	return ZoneResponse{
		ID:       model.ID,
		Level:    string(model.Level),
		ParentID: model.ParentID,
		NameEn:   model.NameEn,
		NameAr:   model.NameAr,
		Covers:   model.Covers,
	}
}

// ModelsToZoneResponses converts a slice of zones to DTOs.
func ModelsToZoneResponses(zones []models.Zone) []ZoneResponse {
	responses := make([]ZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = ModelToZoneResponse(z)
	}
	return responses
}

// ModelToHotspotResponse converts a hotspot to its DTO.
func ModelToHotspotResponse(model models.Hotspot) HotspotResponse {
	return HotspotResponse{
		ID:            model.ID,
		ZoneID:        model.ZoneID,
		CentroidLat:   model.CentroidLat,
		CentroidLon:   model.CentroidLon,
		IncidentCount: model.IncidentCount,
		Score:         model.Score,
		DetectedAt:    model.DetectedAt,
		Predicted:     model.Predicted,
	}
}

// ModelsToHotspotResponses converts a slice of hotspots to DTOs.
func ModelsToHotspotResponses(hotspots []models.Hotspot) []HotspotResponse {
	responses := make([]HotspotResponse, len(hotspots))
	for i, h := range hotspots {
		responses[i] = ModelToHotspotResponse(h)
	}
	return responses
}

// ModelToForecastResponse converts a forecast to its DTO.
func ModelToForecastResponse(model *models.ForecastPoint) ForecastResponse {
	return ForecastResponse{
		ID:             model.ID,
		ZoneID:         model.ZoneID,
		HorizonStart:   model.HorizonStart,
		HorizonEnd:     model.HorizonEnd,
		PredictedCount: model.PredictedCount,
		IntervalWidth:  model.IntervalWidth,
		BucketCount:    model.BucketCount,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelToAlertResponse converts an alert with its dispatches to a DTO.
func ModelToAlertResponse(model models.Alert) AlertResponse {
	resp := AlertResponse{
		ID:                    model.ID,
		ZoneID:                model.ZoneID,
		Tier:                  string(model.Tier),
		HotspotID:             model.HotspotID,
		ForecastID:            model.ForecastID,
		Message:               model.Message,
		Suppressed:            model.Suppressed,
		SuppressedDuplicateOf: model.SuppressedDuplicateOf,
		CreatedAt:             model.CreatedAt,
	}
	for _, d := range model.Dispatches {
		resp.Dispatches = append(resp.Dispatches, DispatchResponse{
			Channel:      d.Channel,
			Recipient:    d.Recipient,
			Success:      d.Success,
			Error:        d.Error,
			DispatchedAt: d.DispatchedAt,
		})
	}
	return resp
}

// ModelsToAlertResponses converts a slice of alerts to DTOs.
func ModelsToAlertResponses(alerts []models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = ModelToAlertResponse(a)
	}
	return responses
}

// SummaryToResponse converts a cycle summary to its DTO.
func SummaryToResponse(summary *service.CycleSummary) CycleSummaryResponse {
	return CycleSummaryResponse{
		StartedAt:        summary.StartedAt,
		DurationMs:       summary.Duration.Milliseconds(),
		IncidentsFetched: summary.IncidentsFetched,
		Resolved:         summary.Resolved,
		ResolveFailed:    summary.ResolveFailed,
		SuccessRate:      summary.SuccessRate,
		ZonesProcessed:   summary.ZonesProcessed,
		Hotspots:         summary.Hotspots,
		Forecasts:        summary.Forecasts,
		ForecastsSkipped: summary.ForecastsSkipped,
		AlertsFired:      summary.AlertsFired,
		AlertsSuppressed: summary.AlertsSuppressed,
	}
}
