package domain

import "time"

// CatalogStats is the aggregated view of the incident catalog served to the
// dashboard. It is derived in-process from the immutable catalog.
type CatalogStats struct {
	TotalIncidents  int                   `json:"total_incidents"`
	ByCategory      map[CrimeCategory]int `json:"by_category"`
	ByTimeOfDay     map[TimeOfDay]int     `json:"by_time_of_day"`
	ByVictimProfile map[VictimProfile]int `json:"by_victim_profile"`
	Coverage        CoverageStats         `json:"coverage"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// CoverageStats describes the bounding box the catalog spans.
type CoverageStats struct {
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
	CenterLat  float64 `json:"center_lat"`
	CenterLon  float64 `json:"center_lon"`
}
