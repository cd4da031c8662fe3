package geo

import (
	"fmt"
	"time"

	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// preparedZone is a zone with its geometry pre-indexed for point tests: the
// bounding box narrows the candidate set before the exact ray-casting test,
// and the centroid serves the nearest-zone fallback.
type preparedZone struct {
	zone     models.Zone
	bbox     [4]float64 // minLon, minLat, maxLon, maxLat
	centroid models.Point
}

// Catalog is the read-only, validated zone hierarchy shared by the pipeline.
// It is built once at startup (and on administrative reload) and never
// mutated afterwards, so concurrent readers need no locking.
type Catalog struct {
	byLevel map[models.ZoneLevel][]preparedZone
	byID    map[int64]models.Zone
	builtAt time.Time
}

// BuildCatalog validates raw zones and prepares the per-level geometry
// indexes. Validation happens once here so the rest of the pipeline can
// treat zone records as trusted.
func BuildCatalog(zones []models.Zone) (*Catalog, error) {
	c := &Catalog{
		byLevel: make(map[models.ZoneLevel][]preparedZone),
		byID:    make(map[int64]models.Zone, len(zones)),
		builtAt: time.Now(),
	}

	for _, z := range zones {
		if !z.Level.Valid() {
			return nil, fmt.Errorf("zone %d: unknown level %q", z.ID, z.Level)
		}
		if err := validateRing(z.Ring); err != nil {
			return nil, fmt.Errorf("zone %d: %w", z.ID, err)
		}
		if _, dup := c.byID[z.ID]; dup {
			return nil, fmt.Errorf("zone %d: duplicate id", z.ID)
		}
		switch z.Level {
		case models.LevelGovernorate:
			if z.ParentID != nil {
				return nil, fmt.Errorf("zone %d: governorate must not have a parent", z.ID)
			}
		case models.LevelDistrict, models.LevelBlock:
			if z.ParentID == nil {
				return nil, fmt.Errorf("zone %d: %s requires a parent zone", z.ID, z.Level)
			}
		case models.LevelPoliceZone:
			if z.ParentID != nil {
				return nil, fmt.Errorf("zone %d: police zone references covered zones, not a parent", z.ID)
			}
		}

		c.byID[z.ID] = z
		c.byLevel[z.Level] = append(c.byLevel[z.Level], preparedZone{
			zone:     z,
			bbox:     ringBBox(z.Ring),
			centroid: ringCentroid(z.Ring),
		})
	}

	// Parent references must land exactly one level up.
	for _, z := range c.byID {
		if z.ParentID == nil {
			continue
		}
		parent, ok := c.byID[*z.ParentID]
		if !ok {
			return nil, fmt.Errorf("zone %d: parent %d not in catalog", z.ID, *z.ParentID)
		}
		if parentLevel(z.Level) != parent.Level {
			return nil, fmt.Errorf("zone %d: parent %d has level %s, want %s", z.ID, parent.ID, parent.Level, parentLevel(z.Level))
		}
	}

	return c, nil
}

// Zone returns the zone by id.
func (c *Catalog) Zone(id int64) (models.Zone, bool) {
	z, ok := c.byID[id]
	return z, ok
}

// ZonesAt returns all zones at the given level.
func (c *Catalog) ZonesAt(level models.ZoneLevel) []models.Zone {
	prepared := c.byLevel[level]
	zones := make([]models.Zone, len(prepared))
	for i, p := range prepared {
		zones[i] = p.zone
	}
	return zones
}

// Size returns the total number of zones in the catalog.
func (c *Catalog) Size() int {
	return len(c.byID)
}

// BuiltAt returns when this catalog snapshot was prepared.
func (c *Catalog) BuiltAt() time.Time {
	return c.builtAt
}

func parentLevel(level models.ZoneLevel) models.ZoneLevel {
	switch level {
	case models.LevelDistrict:
		return models.LevelGovernorate
	case models.LevelBlock:
		return models.LevelDistrict
	}
	return ""
}

// validateRing requires a closed ring of at least four vertices (triangle
// plus the closing vertex).
func validateRing(ring []models.Point) error {
	if len(ring) < 4 {
		return fmt.Errorf("polygon ring has %d vertices, need at least 4", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		return fmt.Errorf("polygon ring is not closed")
	}
	return nil
}

// ringBBox computes the bounding box (minLon, minLat, maxLon, maxLat).
func ringBBox(ring []models.Point) [4]float64 {
	b := [4]float64{ring[0].Lon, ring[0].Lat, ring[0].Lon, ring[0].Lat}
	for _, p := range ring[1:] {
		if p.Lon < b[0] {
			b[0] = p.Lon
		}
		if p.Lat < b[1] {
			b[1] = p.Lat
		}
		if p.Lon > b[2] {
			b[2] = p.Lon
		}
		if p.Lat > b[3] {
			b[3] = p.Lat
		}
	}
	return b
}

// ringCentroid is the vertex mean, ignoring the duplicated closing vertex.
// Good enough for the nearest-zone fallback on zone-scale polygons.
func ringCentroid(ring []models.Point) models.Point {
	open := ring[:len(ring)-1]
	var lat, lon float64
	for _, p := range open {
		lat += p.Lat
		lon += p.Lon
	}
	n := float64(len(open))
	return models.Point{Lat: lat / n, Lon: lon / n}
}
