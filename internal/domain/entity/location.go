package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationRecord is one reported fix, tagged with its computed geofence membership.
// Records are append-only.
type LocationRecord struct {
	ID                   uuid.UUID `json:"id"`
	DeviceID             string    `json:"deviceId"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Accuracy             float64   `json:"accuracy"`
	Altitude             *float64  `json:"altitude,omitempty"`
	Speed                *float64  `json:"speed,omitempty"`
	Heading              *float64  `json:"heading,omitempty"`
	Battery              *int      `json:"battery,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	IsInGeofence         bool      `json:"isInGeofence"`
	DistanceFromCenterKm float64   `json:"distanceFromCenterKm"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Fix is a location sample as reported by a device.
type Fix struct {
	DeviceID     string
	DeviceName   string
	Manufacturer string
	Model        string
	OSVersion    string
	Latitude     float64
	Longitude    float64
	Accuracy     float64
	Altitude     *float64
	Speed        *float64
	Heading      *float64
	Battery      *int
	Timestamp    time.Time
}
