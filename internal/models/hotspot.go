package models

import (
	"time"

	"github.com/google/uuid"
)

// Hotspot is a density-detected cluster of incidents confined to a single
// zone. Hotspots are recreated wholesale on each clustering run; prior rows
// for the zone are marked superseded, never deleted.
type Hotspot struct {
	ID            uuid.UUID `json:"id"`
	ZoneID        int64     `json:"zone_id"`
	CentroidLat   float64   `json:"centroid_lat"`
	CentroidLon   float64   `json:"centroid_lon"`
	IncidentCount int       `json:"incident_count"`
	Score         float64   `json:"score"`
	DetectedAt    time.Time `json:"detected_at"`
	Predicted     bool      `json:"predicted"`
	Superseded    bool      `json:"superseded"`
}
