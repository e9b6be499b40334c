package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance computes the great-circle distance between two points in
// kilometers. Used for reporting; the risk engine works in degree space.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DegreeDistance computes the planar Euclidean distance in degree space.
// Non-geodesic: one degree of longitude shrinks with latitude, so a fixed
// degree radius covers less east-west ground the farther from the equator the
// points sit. Near Dhaka (23.8°N) 0.005° is ~556 m north-south but only
// ~509 m east-west. Thresholds built on this distance are approximations.
func DegreeDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// ValidateCoordinates checks coordinate validity
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
