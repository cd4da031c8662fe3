package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident is a point-located report. Zone fields are empty until the
// resolver attaches them; the record is never deleted by the pipeline.
type Incident struct {
	ID         uuid.UUID `json:"id"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`

	GovernorateID *int64     `json:"governorate_id,omitempty"`
	DistrictID    *int64     `json:"district_id,omitempty"`
	BlockID       *int64     `json:"block_id,omitempty"`
	PoliceZoneIDs []int64    `json:"police_zone_ids,omitempty"`
	Approximate   bool       `json:"approximate"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// ZoneAssignment is the result of resolving one coordinate: at most one zone
// per administrative level plus zero or more police zones. Approximate is set
// when any level was assigned by the nearest-centroid fallback rather than an
// enclosing polygon.
type ZoneAssignment struct {
	GovernorateID *int64  `json:"governorate_id,omitempty"`
	DistrictID    *int64  `json:"district_id,omitempty"`
	BlockID       *int64  `json:"block_id,omitempty"`
	PoliceZoneIDs []int64 `json:"police_zone_ids,omitempty"`
	Approximate   bool    `json:"approximate"`
}

// ZoneAt returns the assigned zone id for an administrative level.
func (a *ZoneAssignment) ZoneAt(level ZoneLevel) *int64 {
	switch level {
	case LevelGovernorate:
		return a.GovernorateID
	case LevelDistrict:
		return a.DistrictID
	case LevelBlock:
		return a.BlockID
	}
	return nil
}

// SetZoneAt records the assigned zone id for an administrative level.
func (a *ZoneAssignment) SetZoneAt(level ZoneLevel, id int64) {
	switch level {
	case LevelGovernorate:
		a.GovernorateID = &id
	case LevelDistrict:
		a.DistrictID = &id
	case LevelBlock:
		a.BlockID = &id
	}
}
