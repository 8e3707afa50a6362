package entity

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// Geofence is a named circular region used as the entry-trigger boundary.
type Geofence struct {
	Name     string
	Center   orb.Point // Longitude first, as orb stores it.
	RadiusKm float64
}

// LatLng is the wire form of a coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MarshalJSON renders the center as {lat, lng} for map clients.
func (g Geofence) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string  `json:"name"`
		Center   LatLng  `json:"center"`
		RadiusKm float64 `json:"radiusKm"`
	}{
		Name:     g.Name,
		Center:   LatLng{Lat: g.Center.Lat(), Lng: g.Center.Lon()},
		RadiusKm: g.RadiusKm,
	})
}

// GeofenceResult is the classification of a single point against a Geofence.
type GeofenceResult struct {
	Inside     bool    `json:"inside"`
	DistanceKm float64 `json:"distanceKm"`
}

// GeofenceState is the per-device membership tracked between fixes.
type GeofenceState string

const (
	GeofenceStateUnknown GeofenceState = "unknown"
	GeofenceStateOutside GeofenceState = "outside"
	GeofenceStateInside  GeofenceState = "inside"
)
