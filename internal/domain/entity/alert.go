package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert records a geofence entry that passed the cooldown gate.
// Only the two delivery flags change after creation.
type Alert struct {
	ID                   uuid.UUID `json:"id"`
	DeviceID             string    `json:"deviceId"`
	DeviceName           string    `json:"deviceName"` // Name snapshot at alert time.
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	DistanceFromCenterKm float64   `json:"distanceFromCenterKm"`
	Timestamp            time.Time `json:"timestamp"`
	EmailSent            bool      `json:"emailSent"`
	PushSent             bool      `json:"pushSent"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
