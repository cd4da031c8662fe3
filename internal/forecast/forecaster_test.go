package forecast

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesStart() time.Time {
	return time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
}

// constantSeries returns n hourly buckets all holding the same count.
func constantSeries(n, count int) []Bucket {
	start := seriesStart()
	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i] = Bucket{Start: start.Add(time.Duration(i) * time.Hour), Count: count}
	}
	return buckets
}

func TestBucketHourly(t *testing.T) {
	from := seriesStart()
	to := from.Add(6 * time.Hour)
	incidents := []models.Incident{
		{ID: uuid.New(), OccurredAt: from.Add(10 * time.Minute)},
		{ID: uuid.New(), OccurredAt: from.Add(50 * time.Minute)},
		{ID: uuid.New(), OccurredAt: from.Add(3*time.Hour + 5*time.Minute)},
		{ID: uuid.New(), OccurredAt: from.Add(7 * time.Hour)}, // outside the window
		{ID: uuid.New(), OccurredAt: from.Add(-time.Hour)},    // before the window
	}

	buckets := BucketHourly(incidents, from, to)

	require.Len(t, buckets, 6)
	assert.Equal(t, from, buckets[0].Start)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 0, buckets[1].Count)
	assert.Equal(t, 0, buckets[2].Count)
	assert.Equal(t, 3, buckets[3].Count)
	assert.Equal(t, 0, buckets[4].Count)
	assert.Equal(t, 0, buckets[5].Count)
}

func TestBucketHourly_EmptyWindow(t *testing.T) {
	from := seriesStart()
	assert.Nil(t, BucketHourly(nil, from, from))
	assert.Nil(t, BucketHourly(nil, from.Add(time.Hour), from))
}

func TestForecast_InsufficientHistory(t *testing.T) {
	forecaster := NewForecaster(48)

	fc, err := forecaster.Forecast(10, constantSeries(47, 2), seriesStart().Add(47*time.Hour), 24*time.Hour)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
	assert.Nil(t, fc)
}

func TestForecast_ConstantSeries(t *testing.T) {
	forecaster := NewForecaster(48)
	series := constantSeries(72, 2)
	horizonStart := seriesStart().Add(72 * time.Hour)

	fc, err := forecaster.Forecast(10, series, horizonStart, 6*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, int64(10), fc.ZoneID)
	assert.Equal(t, horizonStart, fc.HorizonStart)
	assert.Equal(t, horizonStart.Add(6*time.Hour), fc.HorizonEnd)
	assert.Equal(t, 72, fc.BucketCount)
	// A flat history projects flat: two incidents per hour over six hours.
	assert.InDelta(t, 12.0, fc.PredictedCount, 1e-6)
	// And a perfect fit leaves no residual to widen the interval.
	assert.InDelta(t, 0.0, fc.IntervalWidth, 1e-9)
}

func TestForecast_NonNegativePrediction(t *testing.T) {
	forecaster := NewForecaster(48)
	// Steeply falling series: the fitted trend goes negative inside the
	// horizon, but per-bucket projections are floored at zero.
	series := make([]Bucket, 72)
	start := seriesStart()
	for i := range series {
		count := 20 - i/3
		if count < 0 {
			count = 0
		}
		series[i] = Bucket{Start: start.Add(time.Duration(i) * time.Hour), Count: count}
	}

	fc, err := forecaster.Forecast(10, series, start.Add(72*time.Hour), 24*time.Hour)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fc.PredictedCount, 0.0)
}

func TestForecast_VarianceWidensInterval(t *testing.T) {
	forecaster := NewForecaster(48)
	start := seriesStart()
	horizonStart := start.Add(72 * time.Hour)

	// Same hour of day, different counts across days: the seasonal baseline
	// cannot absorb the spread, so it lands in the residual.
	noisy := make([]Bucket, 72)
	for i := range noisy {
		count := 1
		if (i/24)%2 == 1 {
			count = 5
		}
		noisy[i] = Bucket{Start: start.Add(time.Duration(i) * time.Hour), Count: count}
	}

	flat, err := forecaster.Forecast(10, constantSeries(72, 3), horizonStart, 6*time.Hour)
	require.NoError(t, err)
	spread, err := forecaster.Forecast(10, noisy, horizonStart, 6*time.Hour)
	require.NoError(t, err)

	assert.Greater(t, spread.IntervalWidth, flat.IntervalWidth)
}

func TestForecast_MoreHistoryTightensInterval(t *testing.T) {
	forecaster := NewForecaster(48)
	start := seriesStart()

	// Identical per-day shape with the same alternating-day noise, three days
	// of it versus three weeks.
	build := func(days int) []Bucket {
		buckets := make([]Bucket, days*24)
		for i := range buckets {
			count := 1
			if i%24 >= 18 {
				count = 4 // evening peak
			}
			count += (i / 24) % 2
			buckets[i] = Bucket{Start: start.Add(time.Duration(i) * time.Hour), Count: count}
		}
		return buckets
	}

	short, err := forecaster.Forecast(10, build(3), start.Add(72*time.Hour), 6*time.Hour)
	require.NoError(t, err)
	long, err := forecaster.Forecast(10, build(21), start.Add(21*24*time.Hour), 6*time.Hour)
	require.NoError(t, err)

	assert.Less(t, long.IntervalWidth, short.IntervalWidth)
}
