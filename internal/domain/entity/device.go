// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Device represents a tracked handset that reports location fixes.
type Device struct {
	DeviceID           string     `json:"deviceId"`                     // Stable client-assigned identifier.
	DeviceName         string     `json:"deviceName"`                   // Display name, refreshed on every fix.
	Manufacturer       string     `json:"manufacturer,omitempty"`       // Optional hardware metadata.
	Model              string     `json:"model,omitempty"`              // Optional hardware metadata.
	OSVersion          string     `json:"osVersion,omitempty"`          // Optional hardware metadata.
	RegisteredAt       time.Time  `json:"registeredAt"`                 // Set once, when the device is first seen.
	LastSeen           *time.Time `json:"lastSeen,omitempty"`           // Timestamp of the most recent fix.
	IsActive           bool       `json:"isActive"`                     // Inactive devices are hidden from the dashboard.
	LastGeofenceInside *bool      `json:"lastGeofenceInside,omitempty"` // Nil until the first fix has been evaluated.
	LastAlertAt        *time.Time `json:"lastAlertAt,omitempty"`        // Nil until the first alert fires.
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// DeviceProfile carries the mutable profile fields refreshed on every fix.
type DeviceProfile struct {
	DeviceID     string
	DeviceName   string
	Manufacturer string
	Model        string
	OSVersion    string
	LastSeen     time.Time
}

// GeofenceState reports the membership recorded for the device before the current fix.
func (d *Device) GeofenceState() GeofenceState {
	if d == nil || d.LastGeofenceInside == nil {
		return GeofenceStateUnknown
	}
	if *d.LastGeofenceInside {
		return GeofenceStateInside
	}

	return GeofenceStateOutside
}
