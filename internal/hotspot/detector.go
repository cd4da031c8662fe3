package hotspot

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/models"
)

// Detector runs density-based clustering over the incidents of a single
// zone. It performs no zone filtering and no I/O: callers pass incidents
// already restricted to one zone and a trailing window, which keeps the
// detector side-effect-free and testable.
type Detector struct {
	epsByLevel      map[models.ZoneLevel]float64
	minPoints       int
	recencyHalfLife time.Duration
}

// NewDetector builds a detector. eps is expressed in coordinate degrees and
// is chosen per zone level: block-level zones use a tighter radius than
// district-level ones.
func NewDetector(epsByLevel map[models.ZoneLevel]float64, minPoints int, recencyHalfLife time.Duration) *Detector {
	return &Detector{
		epsByLevel:      epsByLevel,
		minPoints:       minPoints,
		recencyHalfLife: recencyHalfLife,
	}
}

// Cluster labels used during the scan.
const (
	labelUnvisited = 0
	labelNoise     = -1
)

// Detect clusters the zone's incidents and returns one hotspot per cluster.
// Incidents labeled as noise are dropped. A zone with fewer than minPoints
// incidents yields an empty list.
//
// The input is sorted by a stable key before processing, so repeated runs on
// identical input produce identical cluster membership and scores.
func (d *Detector) Detect(zone models.Zone, incidents []models.Incident, now time.Time) []models.Hotspot {
	if len(incidents) < d.minPoints {
		return nil
	}

	eps, ok := d.epsByLevel[zone.Level]
	if !ok || eps <= 0 {
		return nil
	}

	pts := append([]models.Incident(nil), incidents...)
	sort.Slice(pts, func(i, j int) bool {
		if !pts[i].OccurredAt.Equal(pts[j].OccurredAt) {
			return pts[i].OccurredAt.Before(pts[j].OccurredAt)
		}
		return pts[i].ID.String() < pts[j].ID.String()
	})

	labels := make([]int, len(pts))
	clusterID := 0
	for i := range pts {
		if labels[i] != labelUnvisited {
			continue
		}
		neighbors := d.rangeQuery(pts, i, eps)
		if len(neighbors) < d.minPoints {
			labels[i] = labelNoise
			continue
		}
		clusterID++
		d.expandCluster(pts, labels, i, neighbors, clusterID, eps)
	}

	return d.buildHotspots(zone.ID, pts, labels, clusterID, now)
}

// expandCluster grows a cluster from a core point by absorbing every
// density-reachable neighbor.
func (d *Detector) expandCluster(pts []models.Incident, labels []int, core int, neighbors []int, clusterID int, eps float64) {
	labels[core] = clusterID
	queue := append([]int(nil), neighbors...)
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		if labels[idx] == labelNoise {
			labels[idx] = clusterID // border point
		}
		if labels[idx] != labelUnvisited {
			continue
		}
		labels[idx] = clusterID
		next := d.rangeQuery(pts, idx, eps)
		if len(next) >= d.minPoints {
			queue = append(queue, next...)
		}
	}
}

// rangeQuery returns the indexes of all points within eps of pts[i],
// including i itself. Euclidean distance on lat/lon degrees is acceptable at
// the zone scale targeted since eps is expressed in the same units.
func (d *Detector) rangeQuery(pts []models.Incident, i int, eps float64) []int {
	var neighbors []int
	for j := range pts {
		dLat := pts[i].Latitude - pts[j].Latitude
		dLon := pts[i].Longitude - pts[j].Longitude
		if math.Sqrt(dLat*dLat+dLon*dLon) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// buildHotspots folds cluster members into hotspot records: centroid is the
// member mean, score is the member count weighted by recency so fresh
// clusters outrank stale ones of the same size.
func (d *Detector) buildHotspots(zoneID int64, pts []models.Incident, labels []int, clusters int, now time.Time) []models.Hotspot {
	if clusters == 0 {
		return nil
	}
	hotspots := make([]models.Hotspot, 0, clusters)
	for c := 1; c <= clusters; c++ {
		var latSum, lonSum, score float64
		count := 0
		for i, label := range labels {
			if label != c {
				continue
			}
			latSum += pts[i].Latitude
			lonSum += pts[i].Longitude
			score += d.recencyWeight(pts[i].OccurredAt, now)
			count++
		}
		if count == 0 {
			continue
		}
		hotspots = append(hotspots, models.Hotspot{
			ID:            uuid.New(),
			ZoneID:        zoneID,
			CentroidLat:   latSum / float64(count),
			CentroidLon:   lonSum / float64(count),
			IncidentCount: count,
			Score:         score,
			DetectedAt:    now,
			Predicted:     false,
		})
	}
	return hotspots
}

// recencyWeight halves an incident's contribution every half-life. An
// incident at the reference time contributes 1.0.
func (d *Detector) recencyWeight(occurredAt, now time.Time) float64 {
	if d.recencyHalfLife <= 0 {
		return 1.0
	}
	age := now.Sub(occurredAt)
	if age < 0 {
		age = 0
	}
	return math.Pow(0.5, age.Hours()/d.recencyHalfLife.Hours())
}
