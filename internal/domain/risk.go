package domain

import "encoding/json"

// RiskBand discretizes a continuous risk score for display.
type RiskBand string

const (
	RiskSafe     RiskBand = "Safe"
	RiskModerate RiskBand = "Moderate Risk"
	RiskHigh     RiskBand = "High Risk"
)

// Band thresholds are half-open: [0,150) Safe, [150,300) Moderate, [300,∞) High.
const (
	moderateRiskThreshold = 150
	highRiskThreshold     = 300
)

// RiskTheme carries the UI styling classes for a band.
type RiskTheme struct {
	Bg     string `json:"bg"`
	Border string `json:"border"`
	Text   string `json:"text"`
}

// RiskAssessment is the scoring outcome for one route in one request context.
type RiskAssessment struct {
	Score int       `json:"score"`
	Band  RiskBand  `json:"band"`
	Color string    `json:"color"`
	Theme RiskTheme `json:"theme"`
}

// ClassifyRisk maps a non-negative score onto exactly one band.
func ClassifyRisk(score int) RiskAssessment {
	switch {
	case score < moderateRiskThreshold:
		return RiskAssessment{
			Score: score,
			Band:  RiskSafe,
			Color: "green",
			Theme: RiskTheme{
				Bg:     "bg-green-100 dark:bg-green-900/50",
				Border: "border-green-500",
				Text:   "text-green-800",
			},
		}
	case score < highRiskThreshold:
		return RiskAssessment{
			Score: score,
			Band:  RiskModerate,
			Color: "yellow",
			Theme: RiskTheme{
				Bg:     "bg-yellow-100 dark:bg-yellow-900/50",
				Border: "border-yellow-500",
				Text:   "text-yellow-800",
			},
		}
	default:
		return RiskAssessment{
			Score: score,
			Band:  RiskHigh,
			Color: "red",
			Theme: RiskTheme{
				Bg:     "bg-red-100 dark:bg-red-900/50",
				Border: "border-red-500",
				Text:   "text-red-800",
			},
		}
	}
}

// HeatmapPoint is one visualization point weighted by the request context.
// It marshals as the [lat, lon, intensity] triple the map layer expects.
type HeatmapPoint struct {
	Lat       float64
	Lon       float64
	Intensity float64
}

// MarshalJSON emits the point as a three-element array.
func (p HeatmapPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.Lat, p.Lon, p.Intensity})
}

// UnmarshalJSON reads the point back from a three-element array.
func (p *HeatmapPoint) UnmarshalJSON(data []byte) error {
	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	p.Lat, p.Lon, p.Intensity = triple[0], triple[1], triple[2]
	return nil
}
