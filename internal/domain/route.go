package domain

// RoutePoint is a single (latitude, longitude) pair in degrees.
type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Route is an ordered, non-empty sequence of points: first is the start,
// last is the destination.
type Route []RoutePoint

// Start returns the first point of the route.
func (r Route) Start() RoutePoint {
	return r[0]
}

// End returns the last point of the route.
func (r Route) End() RoutePoint {
	return r[len(r)-1]
}

// RouteOption is a named, pre-defined destination choice offered to the
// traveler. The menu is configuration data; every request evaluates the same
// options from its own origin.
type RouteOption struct {
	Name    string  `json:"name"`
	EndLat  float64 `json:"end_lat"`
	EndLon  float64 `json:"end_lon"`
	EtaMin  int     `json:"eta_min"`
	EtaMax  int     `json:"eta_max"`
	Details string  `json:"details"`
}

// End returns the option's destination as a route point.
func (o RouteOption) End() RoutePoint {
	return RoutePoint{Lat: o.EndLat, Lon: o.EndLon}
}
