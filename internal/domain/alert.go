package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (must match the mobile backend consumers)
const (
	StreamPanicAlerts        = "stream:alerts:panic"
	StreamAlertNotifications = "stream:alerts:notify"
)

// PanicAlertEvent - a panic button press published to the alert stream.
type PanicAlertEvent struct {
	AlertID  uuid.UUID `json:"alert_id"`
	UserID   int64     `json:"user_id"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	RaisedAt time.Time `json:"raised_at"`
}

// NotificationEvent - the notification emitted for a processed alert.
type NotificationEvent struct {
	AlertID   uuid.UUID `json:"alert_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// StreamMessage - a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
