// Package geofence classifies coordinates against a circular geofence.
package geofence

import (
	"math"

	"locust/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean radius of the spherical Earth model.
// Good enough for radii in the tens of kilometers; not geodetically exact.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(a, b orb.Point) float64 {
	lat1 := toRad(a.Lat())
	lat2 := toRad(b.Lat())
	deltaLat := toRad(b.Lat() - a.Lat())
	deltaLng := toRad(b.Lon() - a.Lon())

	x := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	// Rounding can push x just past 1 for near-antipodal points.
	x = math.Min(1, math.Max(0, x))
	c := 2 * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))

	return EarthRadiusKm * c
}

// Classify reports whether point lies inside fence and how far it is from the center.
// The boundary is inclusive.
func Classify(point orb.Point, fence entity.Geofence) entity.GeofenceResult {
	distanceKm := HaversineKm(point, fence.Center)

	return entity.GeofenceResult{
		Inside:     distanceKm <= fence.RadiusKm,
		DistanceKm: distanceKm,
	}
}

// NewPoint builds an orb.Point from latitude and longitude, in that order.
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
