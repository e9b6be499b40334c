package usecase

import (
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/utils"
)

const (
	// proximityThresholdDeg bounds the incident-to-point degree distance.
	// At Dhaka's latitude 0.005 deg is roughly 556 m north-south and 509 m
	// east-west; the anisotropy is accepted for this city-scale use.
	proximityThresholdDeg = 0.005

	timeOfDayMultiplier   = 1.5
	demographicMultiplier = 1.5
)

// RiskScorer accumulates incident severities along a route. It reads the
// shared immutable catalog and holds no mutable state, so one instance serves
// all requests.
type RiskScorer struct {
	catalog *domain.IncidentCatalog
}

func NewRiskScorer(catalog *domain.IncidentCatalog) *RiskScorer {
	return &RiskScorer{catalog: catalog}
}

// Score computes the risk of a route for one request context. Every
// (route point, incident) pair strictly inside the proximity threshold
// contributes the incident severity, multiplied by 1.5 for a time-of-day
// match and by 1.5 again for a demographic match. The sum is truncated to an
// integer at the end, never per contribution.
//
// The scan is O(len(route) * catalog size) with no spatial index; catalogs at
// the intended scale stay far below where that matters.
func (s *RiskScorer) Score(route domain.Route, gender string, timeOfDay domain.TimeOfDay) int {
	total := 0.0
	for _, point := range route {
		for _, incident := range s.catalog.All() {
			dist := utils.DegreeDistance(point.Lat, point.Lon, incident.Lat, incident.Lon)
			if dist >= proximityThresholdDeg {
				continue
			}

			contribution := float64(incident.Category.Severity())
			if incident.TimeOfDay == timeOfDay {
				contribution *= timeOfDayMultiplier
			}
			if incident.VictimProfile.Matches(gender) {
				contribution *= demographicMultiplier
			}
			total += contribution
		}
	}
	return int(total)
}
