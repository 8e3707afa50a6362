package service

import (
	"context"
	"time"
)

// AlertEvent is published after a geofence entry alert has been dispatched
type AlertEvent struct {
	RequestID            string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID              string    `json:"alert_id"`
	DeviceID             string    `json:"device_id"`
	DeviceName           string    `json:"device_name"`
	GeofenceName         string    `json:"geofence_name"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	DistanceFromCenterKm float64   `json:"distance_from_center_km"`
	Timestamp            time.Time `json:"timestamp"`
	EmailSent            bool      `json:"email_sent"`
	PushSent             bool      `json:"push_sent"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for downstream consumers
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
