package models

// ZoneLevel is one level of the administrative hierarchy, or the separate
// jurisdiction layer.
type ZoneLevel string

const (
	LevelGovernorate ZoneLevel = "governorate"
	LevelDistrict    ZoneLevel = "district"
	LevelBlock       ZoneLevel = "block"
	LevelPoliceZone  ZoneLevel = "police_zone"
)

// AdminLevels returns the administrative hierarchy levels in order, root
// first. The police zone layer is not part of the hierarchy.
func AdminLevels() []ZoneLevel {
	return []ZoneLevel{LevelGovernorate, LevelDistrict, LevelBlock}
}

// Valid reports whether l is a known zone level.
func (l ZoneLevel) Valid() bool {
	switch l {
	case LevelGovernorate, LevelDistrict, LevelBlock, LevelPoliceZone:
		return true
	}
	return false
}

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Zone is a named polygon area at one hierarchy level. The ring is ordered
// and closed (first vertex repeated last). ParentID is set for district and
// block zones; police zones instead carry the set of administrative zones
// they cover.
type Zone struct {
	ID       int64     `json:"id"`
	Level    ZoneLevel `json:"level"`
	ParentID *int64    `json:"parent_id,omitempty"`
	NameEn   string    `json:"name_en"`
	NameAr   string    `json:"name_ar"`
	Ring     []Point   `json:"ring"`
	Covers   []int64   `json:"covers,omitempty"`
}
