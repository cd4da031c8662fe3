package models

import (
	"time"

	"github.com/google/uuid"
)

// ForecastPoint is the predicted incident count for one zone over an explicit
// horizon. One active forecast per zone per horizon; replaced (superseded)
// on each forecasting run.
type ForecastPoint struct {
	ID             uuid.UUID `json:"id"`
	ZoneID         int64     `json:"zone_id"`
	HorizonStart   time.Time `json:"horizon_start"`
	HorizonEnd     time.Time `json:"horizon_end"`
	PredictedCount float64   `json:"predicted_count"`
	// IntervalWidth is the +/- width of the confidence interval around
	// PredictedCount, in incidents. Wider means less confident.
	IntervalWidth float64   `json:"interval_width"`
	BucketCount   int       `json:"bucket_count"`
	CreatedAt     time.Time `json:"created_at"`
	Superseded    bool      `json:"superseded"`
}
