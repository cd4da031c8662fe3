package hotspot

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEps = map[models.ZoneLevel]float64{
	models.LevelGovernorate: 0.02,
	models.LevelDistrict:    0.008,
	models.LevelBlock:       0.003,
}

func testDistrict() models.Zone {
	return models.Zone{ID: 10, Level: models.LevelDistrict, NameEn: "Sharq", NameAr: "شرق"}
}

// incidentAt builds an incident at the coordinate with a fixed category.
func incidentAt(lat, lon float64, occurredAt time.Time) models.Incident {
	return models.Incident{
		ID:         uuid.New(),
		Category:   "theft",
		OccurredAt: occurredAt,
		Latitude:   lat,
		Longitude:  lon,
	}
}

// tightCluster returns n incidents within a few hundred meters of the center.
func tightCluster(n int, lat, lon float64, at time.Time) []models.Incident {
	incidents := make([]models.Incident, n)
	for i := range incidents {
		offset := float64(i) * 0.0004
		incidents[i] = incidentAt(lat+offset, lon-offset, at.Add(-time.Duration(i)*time.Hour))
	}
	return incidents
}

func TestDetect_SingleCluster(t *testing.T) {
	detector := NewDetector(testEps, 5, 168*time.Hour)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	incidents := tightCluster(6, 29.20, 47.70, now)

	hotspots := detector.Detect(testDistrict(), incidents, now)

	require.Len(t, hotspots, 1)
	h := hotspots[0]
	assert.Equal(t, int64(10), h.ZoneID)
	assert.Equal(t, 6, h.IncidentCount)
	assert.InDelta(t, 29.20, h.CentroidLat, 0.002)
	assert.InDelta(t, 47.70, h.CentroidLon, 0.002)
	assert.Equal(t, now, h.DetectedAt)
	assert.False(t, h.Predicted)
	// All incidents are hours old with a week-long half-life, so the score
	// sits just below the raw count.
	assert.Greater(t, h.Score, 5.0)
	assert.LessOrEqual(t, h.Score, 6.0)
}

func TestDetect_BelowMinPoints(t *testing.T) {
	detector := NewDetector(testEps, 5, 168*time.Hour)
	now := time.Now()
	incidents := tightCluster(4, 29.20, 47.70, now)

	assert.Empty(t, detector.Detect(testDistrict(), incidents, now))
}

func TestDetect_NoiseDropped(t *testing.T) {
	detector := NewDetector(testEps, 5, 168*time.Hour)
	now := time.Now()
	incidents := tightCluster(6, 29.20, 47.70, now)
	// A lone incident far from the cluster must not form a hotspot and must
	// not join one.
	incidents = append(incidents, incidentAt(29.28, 47.78, now))

	hotspots := detector.Detect(testDistrict(), incidents, now)

	require.Len(t, hotspots, 1)
	assert.Equal(t, 6, hotspots[0].IncidentCount)
}

func TestDetect_TwoClusters(t *testing.T) {
	detector := NewDetector(testEps, 5, 168*time.Hour)
	now := time.Now()
	incidents := tightCluster(5, 29.12, 47.62, now)
	incidents = append(incidents, tightCluster(7, 29.28, 47.78, now)...)

	hotspots := detector.Detect(testDistrict(), incidents, now)

	require.Len(t, hotspots, 2)
	counts := []int{hotspots[0].IncidentCount, hotspots[1].IncidentCount}
	assert.ElementsMatch(t, []int{5, 7}, counts)
}

func TestDetect_Deterministic(t *testing.T) {
	detector := NewDetector(testEps, 5, 168*time.Hour)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	incidents := tightCluster(6, 29.20, 47.70, now)

	// Reversed input order must produce identical clusters and scores.
	reversed := make([]models.Incident, len(incidents))
	for i, inc := range incidents {
		reversed[len(incidents)-1-i] = inc
	}

	first := detector.Detect(testDistrict(), incidents, now)
	second := detector.Detect(testDistrict(), reversed, now)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].IncidentCount, second[0].IncidentCount)
	assert.InDelta(t, first[0].Score, second[0].Score, 1e-12)
	assert.InDelta(t, first[0].CentroidLat, second[0].CentroidLat, 1e-12)
	assert.InDelta(t, first[0].CentroidLon, second[0].CentroidLon, 1e-12)
}

func TestDetect_RecencyWeighting(t *testing.T) {
	detector := NewDetector(testEps, 5, 168*time.Hour)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	fresh := detector.Detect(testDistrict(), tightCluster(5, 29.20, 47.70, now), now)
	stale := detector.Detect(testDistrict(), tightCluster(5, 29.20, 47.70, now.Add(-28*24*time.Hour)), now)

	require.Len(t, fresh, 1)
	require.Len(t, stale, 1)
	// Same size, but a month-old cluster has decayed through four half-lives.
	assert.Greater(t, fresh[0].Score, stale[0].Score)
	assert.Less(t, stale[0].Score, 1.0)
}

func TestDetect_UnknownLevelEps(t *testing.T) {
	detector := NewDetector(map[models.ZoneLevel]float64{}, 5, 168*time.Hour)
	now := time.Now()

	assert.Empty(t, detector.Detect(testDistrict(), tightCluster(6, 29.20, 47.70, now), now))
}
