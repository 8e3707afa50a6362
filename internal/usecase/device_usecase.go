package usecase

import (
	"context"

	"github.com/paulmach/orb/geojson"
)

// EnrollmentQR is the QR code a phone scans to learn the ingest URL.
type EnrollmentQR struct {
	URL string
	PNG []byte
}

// DeviceUsecase defines per-device read operations and enrollment.
type DeviceUsecase interface {
	// GetTrack returns up to limit of the device's newest fixes as a GeoJSON
	// LineString feature in chronological order.
	GetTrack(ctx context.Context, deviceID string, limit int) (*geojson.Feature, error)

	// GetEnrollmentQR renders the enrollment QR code.
	GetEnrollmentQR(ctx context.Context) (*EnrollmentQR, error)
}
