package forecast

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// ErrInsufficientHistory is returned when a zone has too few buckets to
// forecast. Non-fatal per zone: the caller skips and logs.
var ErrInsufficientHistory = errors.New("insufficient history to forecast")

// Bucket is one fixed-granularity slice of a zone's incident time series.
type Bucket struct {
	Start time.Time
	Count int
}

// Forecaster projects a zone's hourly incident series over a short horizon
// using a linear trend plus an hour-of-day seasonal baseline. The model is
// deliberately minimal and substitutable; downstream consumers depend only
// on the ForecastPoint shape.
type Forecaster struct {
	minBuckets int
}

// NewForecaster builds a forecaster requiring at least minBuckets hourly
// buckets of history.
func NewForecaster(minBuckets int) *Forecaster {
	return &Forecaster{minBuckets: minBuckets}
}

// BucketHourly folds incidents into contiguous hourly buckets covering
// [from, to). Hours without incidents produce zero-count buckets, so the
// series has no gaps.
func BucketHourly(incidents []models.Incident, from, to time.Time) []Bucket {
	from = from.Truncate(time.Hour)
	to = to.Truncate(time.Hour)
	if !to.After(from) {
		return nil
	}
	n := int(to.Sub(from) / time.Hour)
	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i].Start = from.Add(time.Duration(i) * time.Hour)
	}
	for _, inc := range incidents {
		idx := int(inc.OccurredAt.Sub(from) / time.Hour)
		if idx >= 0 && idx < n {
			buckets[idx].Count++
		}
	}
	return buckets
}

// Forecast predicts the zone's incident count over [horizonStart,
// horizonStart+horizon). The interval width grows with historical variance
// and shrinks as the bucket count moves away from the minimum threshold.
func (f *Forecaster) Forecast(zoneID int64, series []Bucket, horizonStart time.Time, horizon time.Duration) (*models.ForecastPoint, error) {
	n := len(series)
	if n < f.minBuckets {
		return nil, ErrInsufficientHistory
	}

	horizonBuckets := int(horizon / time.Hour)
	if horizonBuckets < 1 {
		horizonBuckets = 1
	}

	slope, intercept := linearTrend(series)
	seasonal, overallMean := hourlyMeans(series)

	// Project each future bucket as trend plus its hour-of-day deviation
	// from the overall mean, floored at zero.
	var predicted float64
	for k := 0; k < horizonBuckets; k++ {
		idx := float64(n + k)
		hour := horizonStart.Add(time.Duration(k) * time.Hour).Hour()
		v := intercept + slope*idx + seasonal[hour] - overallMean
		if v > 0 {
			predicted += v
		}
	}

	residualStd := residualStd(series, slope, intercept, seasonal, overallMean)
	sampleFactor := 1 + float64(f.minBuckets)/float64(n)
	intervalWidth := 1.96 * residualStd * math.Sqrt(float64(horizonBuckets)) * sampleFactor

	return &models.ForecastPoint{
		ID:             uuid.New(),
		ZoneID:         zoneID,
		HorizonStart:   horizonStart,
		HorizonEnd:     horizonStart.Add(time.Duration(horizonBuckets) * time.Hour),
		PredictedCount: predicted,
		IntervalWidth:  intervalWidth,
		BucketCount:    n,
		CreatedAt:      time.Now(),
	}, nil
}

// linearTrend fits count = intercept + slope*index by least squares.
func linearTrend(series []Bucket) (slope, intercept float64) {
	n := float64(len(series))
	var sumX, sumY, sumXY, sumXX float64
	for i, b := range series {
		x := float64(i)
		y := float64(b.Count)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// hourlyMeans computes the mean count per hour of day and the overall mean.
func hourlyMeans(series []Bucket) ([24]float64, float64) {
	var sums [24]float64
	var counts [24]int
	var total float64
	for _, b := range series {
		h := b.Start.Hour()
		sums[h] += float64(b.Count)
		counts[h]++
		total += float64(b.Count)
	}
	overall := total / float64(len(series))
	var means [24]float64
	for h := range sums {
		if counts[h] > 0 {
			means[h] = sums[h] / float64(counts[h])
		} else {
			means[h] = overall
		}
	}
	return means, overall
}

// residualStd measures how far history deviates from the fitted
// trend-plus-seasonal baseline.
func residualStd(series []Bucket, slope, intercept float64, seasonal [24]float64, overallMean float64) float64 {
	if len(series) < 2 {
		return 0
	}
	var sumSq float64
	for i, b := range series {
		fitted := intercept + slope*float64(i) + seasonal[b.Start.Hour()] - overallMean
		r := float64(b.Count) - fitted
		sumSq += r * r
	}
	return math.Sqrt(sumSq / float64(len(series)-1))
}
