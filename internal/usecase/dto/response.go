package dto

import "github.com/saferoute-service/internal/domain"

// RouteSummary describes the selected option the way the client renders it.
// The raw score stays server-side; clients only see the band and its styling.
type RouteSummary struct {
	Name      string           `json:"name"`
	Risk      domain.RiskBand  `json:"risk"`
	RiskColor string           `json:"risk_color"`
	Eta       string           `json:"eta"`
	Details   string           `json:"details"`
	Theme     domain.RiskTheme `json:"theme"`
}

// SuggestRouteResponse - the suggestion for one request: the winning option,
// the context-weighted heatmap and the polyline as [lat, lon] pairs.
type SuggestRouteResponse struct {
	Route       RouteSummary          `json:"route"`
	Heatmap     []domain.HeatmapPoint `json:"heatmap"`
	RouteCoords [][]float64           `json:"route_coords"`
}

// HeatmapResponse - the standalone heatmap projection
type HeatmapResponse struct {
	Points    []domain.HeatmapPoint `json:"points"`
	Gender    string                `json:"gender"`
	TimeOfDay domain.TimeOfDay      `json:"time_of_day"`
}

// PanicAlertResponse - acknowledgement that the alert entered the pipeline
type PanicAlertResponse struct {
	AlertID string `json:"alert_id"`
	Status  string `json:"status"`
}
