package models

import (
	"time"

	"github.com/google/uuid"
)

// Failure reasons recorded on a ResolutionAttempt.
const (
	FailureOutOfBounds        = "out_of_bounds"
	FailureNoEnclosingPolygon = "no_enclosing_polygon"
	FailureCatalogUnavailable = "catalog_unavailable"
	FailurePersistFailed      = "persist_failed"
)

// ResolutionAttempt is an append-only log record of one resolver call. The
// rolling success rate over these records drives the operational warning
// when resolution quality degrades.
type ResolutionAttempt struct {
	ID            int64     `json:"id"`
	IncidentID    uuid.UUID `json:"incident_id"`
	AttemptedAt   time.Time `json:"attempted_at"`
	Resolved      bool      `json:"resolved"`
	FailureReason string    `json:"failure_reason,omitempty"`
}
