package geo

import (
	"math"
	"testing"

	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kuwaitBBox = config.BoundingBox{MinLat: 28.5, MinLon: 46.5, MaxLat: 30.1, MaxLon: 48.5}

func newTestResolver(t *testing.T, fallback bool) *Resolver {
	t.Helper()
	catalog, err := BuildCatalog(testZones())
	require.NoError(t, err)
	return NewResolver(catalog, kuwaitBBox, fallback)
}

func TestResolve_InsideAllLevels(t *testing.T) {
	resolver := newTestResolver(t, true)

	// Inside the block, which is inside the district, inside the governorate.
	assignment, err := resolver.Resolve(29.17, 47.67)
	require.NoError(t, err)

	require.NotNil(t, assignment.GovernorateID)
	assert.Equal(t, int64(1), *assignment.GovernorateID)
	require.NotNil(t, assignment.DistrictID)
	assert.Equal(t, int64(10), *assignment.DistrictID)
	require.NotNil(t, assignment.BlockID)
	assert.Equal(t, int64(100), *assignment.BlockID)
	assert.False(t, assignment.Approximate)
}

func TestResolve_PoliceZoneOverlap(t *testing.T) {
	zones := testZones()
	// A second jurisdiction polygon over the same area. Overlap is legal for
	// the police layer, so both must be returned.
	zones = append(zones, models.Zone{
		ID: 501, Level: models.LevelPoliceZone,
		NameEn: "Capital Police", NameAr: "مخفر العاصمة",
		Ring: squareRing(29.0, 47.5, 29.3, 47.9), Covers: []int64{1},
	})
	catalog, err := BuildCatalog(zones)
	require.NoError(t, err)
	resolver := NewResolver(catalog, kuwaitBBox, true)

	assignment, err := resolver.Resolve(29.17, 47.67)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{500, 501}, assignment.PoliceZoneIDs)
}

func TestResolve_NoPoliceZone(t *testing.T) {
	resolver := newTestResolver(t, true)

	// Inside the governorate but outside the police zone polygon.
	assignment, err := resolver.Resolve(29.45, 47.55)
	require.NoError(t, err)
	assert.Empty(t, assignment.PoliceZoneIDs)
}

func TestResolve_OutOfBounds(t *testing.T) {
	resolver := newTestResolver(t, true)

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"south of country", 25.0, 47.0},
		{"west of country", 29.0, 40.0},
		{"nan latitude", math.NaN(), 47.0},
		{"infinite longitude", 29.0, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assignment, err := resolver.Resolve(tc.lat, tc.lon)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.Nil(t, assignment)
		})
	}
}

func TestResolve_CatalogUnavailable(t *testing.T) {
	resolver := NewResolver(nil, kuwaitBBox, true)

	assignment, err := resolver.Resolve(29.17, 47.67)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Nil(t, assignment)
}

func TestResolve_FallbackMarksApproximate(t *testing.T) {
	resolver := newTestResolver(t, true)

	// Inside the governorate but outside every district and block polygon:
	// those levels are filled by the nearest-centroid fallback.
	assignment, err := resolver.Resolve(29.45, 47.95)
	require.NoError(t, err)

	require.NotNil(t, assignment.GovernorateID)
	assert.Equal(t, int64(1), *assignment.GovernorateID)
	require.NotNil(t, assignment.DistrictID)
	assert.Equal(t, int64(10), *assignment.DistrictID)
	require.NotNil(t, assignment.BlockID)
	assert.Equal(t, int64(100), *assignment.BlockID)
	assert.True(t, assignment.Approximate)
}

func TestResolve_FallbackDisabled(t *testing.T) {
	resolver := newTestResolver(t, false)

	assignment, err := resolver.Resolve(29.45, 47.95)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEnclosingPolygon)
	assert.Nil(t, assignment)
}

func TestPointInRing(t *testing.T) {
	ring := squareRing(29.0, 47.5, 29.5, 48.0)

	assert.True(t, pointInRing(models.Point{Lat: 29.25, Lon: 47.75}, ring))
	assert.False(t, pointInRing(models.Point{Lat: 29.6, Lon: 47.75}, ring))
	assert.False(t, pointInRing(models.Point{Lat: 29.25, Lon: 48.3}, ring))
}

func TestHaversineKm(t *testing.T) {
	// Kuwait City to Ahmadi, roughly 34 km.
	d := haversineKm(29.3759, 47.9774, 29.0769, 48.0839)
	assert.InDelta(t, 34.8, d, 1.5)

	assert.InDelta(t, 0, haversineKm(29.0, 47.0, 29.0, 47.0), 1e-9)
}
