package usecase

import (
	"math"

	"github.com/saferoute-service/internal/domain"
)

// defaultPerturbationDeg is the peak-to-peak jitter amplitude in degrees.
// Each interior point deviates from the straight line by at most half of it.
const defaultPerturbationDeg = 0.008

// RouteSynthesizer generates plausible route geometry between two points.
// No road network is consulted; the polyline only needs to look like a street
// route for scoring and display.
type RouteSynthesizer struct {
	interiorPoints int
	rng            RandSource
}

// NewRouteSynthesizer creates a synthesizer producing interiorPoints+1 points
// per route. Values below 2 are raised to 2 so every route has at least one
// interior point.
func NewRouteSynthesizer(interiorPoints int, rng RandSource) *RouteSynthesizer {
	if interiorPoints < 2 {
		interiorPoints = 2
	}
	return &RouteSynthesizer{
		interiorPoints: interiorPoints,
		rng:            rng,
	}
}

// Synthesize builds a route from start to end. The endpoints are carried
// through exactly; interior points interpolate linearly and are jittered by a
// sine envelope that pins the deviation to zero at both ends.
func (s *RouteSynthesizer) Synthesize(start, end domain.RoutePoint) domain.Route {
	n := s.interiorPoints
	route := make(domain.Route, 0, n+1)
	route = append(route, start)

	for i := 1; i < n; i++ {
		fraction := float64(i) / float64(n)
		envelope := math.Sin(fraction * math.Pi)

		lat := start.Lat + (end.Lat-start.Lat)*fraction +
			(s.rng.Float64()-0.5)*defaultPerturbationDeg*envelope
		lon := start.Lon + (end.Lon-start.Lon)*fraction +
			(s.rng.Float64()-0.5)*defaultPerturbationDeg*envelope

		route = append(route, domain.RoutePoint{Lat: lat, Lon: lon})
	}

	route = append(route, end)
	return route
}
