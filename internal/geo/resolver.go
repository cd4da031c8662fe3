package geo

import (
	"errors"
	"math"

	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the configured
	// country bounding box, before the spatial index is consulted.
	ErrOutOfBounds = errors.New("coordinate outside configured bounding box")
	// ErrNoEnclosingPolygon is returned when no zone contains the point and
	// the nearest-zone fallback is disabled.
	ErrNoEnclosingPolygon = errors.New("no enclosing polygon for coordinate")
	// ErrCatalogUnavailable is returned when the zone catalog is not loaded.
	// It is fatal for the resolution batch.
	ErrCatalogUnavailable = errors.New("zone catalog unavailable")
)

// Resolver maps a coordinate to its enclosing zone at every administrative
// level plus the (possibly empty) set of police zones. Resolution is a pure
// function of the catalog and one point, so a batch may be resolved in
// parallel.
type Resolver struct {
	catalog         *Catalog
	bbox            config.BoundingBox
	fallbackEnabled bool
}

// NewResolver builds a resolver over a prepared catalog. A nil catalog is
// allowed and makes every Resolve call fail with ErrCatalogUnavailable.
func NewResolver(catalog *Catalog, bbox config.BoundingBox, fallbackEnabled bool) *Resolver {
	return &Resolver{
		catalog:         catalog,
		bbox:            bbox,
		fallbackEnabled: fallbackEnabled,
	}
}

// Resolve returns the zone assignment for a coordinate.
//
// Out-of-range or non-finite input fails fast with ErrOutOfBounds. Per
// administrative level the candidate set is narrowed by bounding box, then
// tested with ray casting; when no polygon contains the point the nearest
// zone by centroid haversine distance is assigned and the whole result is
// marked approximate.
func (r *Resolver) Resolve(lat, lon float64) (*models.ZoneAssignment, error) {
	if !isFinite(lat) || !isFinite(lon) || !r.bbox.Contains(lat, lon) {
		return nil, ErrOutOfBounds
	}
	if r.catalog == nil || r.catalog.Size() == 0 {
		return nil, ErrCatalogUnavailable
	}

	pt := models.Point{Lat: lat, Lon: lon}
	assignment := &models.ZoneAssignment{}

	for _, level := range models.AdminLevels() {
		prepared := r.catalog.byLevel[level]
		if len(prepared) == 0 {
			continue
		}
		if id, ok := enclosingZone(pt, prepared); ok {
			assignment.SetZoneAt(level, id)
			continue
		}
		if !r.fallbackEnabled {
			return nil, ErrNoEnclosingPolygon
		}
		assignment.SetZoneAt(level, nearestZone(pt, prepared))
		assignment.Approximate = true
	}

	// The jurisdiction layer may overlap arbitrarily: collect every police
	// zone containing the point, and never force an assignment.
	for _, p := range r.catalog.byLevel[models.LevelPoliceZone] {
		if inBBox(pt, p.bbox) && pointInRing(pt, p.zone.Ring) {
			assignment.PoliceZoneIDs = append(assignment.PoliceZoneIDs, p.zone.ID)
		}
	}

	return assignment, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// enclosingZone returns the first zone at the level whose polygon contains
// the point.
func enclosingZone(pt models.Point, prepared []preparedZone) (int64, bool) {
	for _, p := range prepared {
		if inBBox(pt, p.bbox) && pointInRing(pt, p.zone.Ring) {
			return p.zone.ID, true
		}
	}
	return 0, false
}

// nearestZone returns the zone whose centroid is closest by haversine
// distance.
func nearestZone(pt models.Point, prepared []preparedZone) int64 {
	best := prepared[0].zone.ID
	bestD := math.MaxFloat64
	for _, p := range prepared {
		if d := haversineKm(pt.Lat, pt.Lon, p.centroid.Lat, p.centroid.Lon); d < bestD {
			bestD = d
			best = p.zone.ID
		}
	}
	return best
}

// inBBox is the cheap pre-filter before the exact polygon test.
func inBBox(pt models.Point, b [4]float64) bool {
	return pt.Lon >= b[0] && pt.Lon <= b[2] && pt.Lat >= b[1] && pt.Lat <= b[3]
}

// pointInRing runs the ray-casting (even-odd) test. The epsilon in the
// denominator guards against division by zero on horizontal edges.
func pointInRing(pt models.Point, ring []models.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	x := pt.Lon
	y := pt.Lat
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i].Lon, ring[i].Lat
		xj, yj := ring[j].Lon, ring[j].Lat
		intersect := ((yi > y) != (yj > y)) && (x < (xj-xi)*(y-yi)/(yj-yi+1e-12)+xi)
		if intersect {
			inside = !inside
		}
	}
	return inside
}

// haversineKm is the great-circle distance in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
