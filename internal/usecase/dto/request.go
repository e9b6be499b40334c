package dto

// SuggestRouteRequest - a traveler asking for the safest route option.
// Destination is free text from the client UI; the engine evaluates its fixed
// option menu regardless. Gender is free text too: strings outside the
// recorded victim profiles simply earn no demographic bonus. VisitTime is
// "HH:MM"; an unparsable value falls back to the current hour.
// Coordinates use range tags only, so a legitimate origin on the equator or
// the prime meridian is not rejected as a missing field.
type SuggestRouteRequest struct {
	StartLat    float64 `json:"start_lat" validate:"min=-90,max=90"`
	StartLon    float64 `json:"start_lon" validate:"min=-180,max=180"`
	Destination string  `json:"destination" validate:"omitempty,max=200"`
	Age         int     `json:"age" validate:"omitempty,min=0,max=150"`
	Gender      string  `json:"gender" validate:"omitempty,max=40"`
	VisitTime   string  `json:"visit_time" validate:"omitempty,max=20"`
}

// PanicAlertRequest - a panic button press
type PanicAlertRequest struct {
	UserID int64   `json:"user_id" validate:"required,min=1"`
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
}
