package geofence

import (
	"math"
	"testing"

	"locust/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var testFence = entity.Geofence{
	Name:     "Cosmos Greens, Bhiwadi",
	Center:   NewPoint(28.2036569, 76.8400441),
	RadiusKm: 10,
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Taipei 101 to a point roughly 1 km north
	a := NewPoint(25.0330, 121.5654)
	b := NewPoint(25.0425, 121.5649)

	distance := HaversineKm(a, b)

	assert.Greater(t, distance, 0.8)
	assert.Less(t, distance, 1.5)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	points := []orb.Point{
		NewPoint(0, 0),
		NewPoint(28.2036569, 76.8400441),
		NewPoint(-33.8688, 151.2093),
		NewPoint(51.5074, -0.1278),
		NewPoint(89.9, 179.9),
		NewPoint(-89.9, -179.9),
		NewPoint(40.7128, -74.0060),
	}

	for i, a := range points {
		for j, b := range points {
			assert.Equal(t, HaversineKm(a, b), HaversineKm(b, a), "pair %d,%d", i, j)
		}
	}
}

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	assert.Zero(t, HaversineKm(testFence.Center, testFence.Center))
}

func TestClassify_CenterIsInside(t *testing.T) {
	result := Classify(testFence.Center, testFence)

	assert.True(t, result.Inside)
	assert.Zero(t, result.DistanceKm)
}

func TestClassify_BoundaryIsInclusive(t *testing.T) {
	edge := NewPoint(28.29, 76.84)
	fence := testFence
	fence.RadiusKm = HaversineKm(edge, fence.Center)

	result := Classify(edge, fence)

	assert.True(t, result.Inside)
	assert.Equal(t, fence.RadiusKm, result.DistanceKm)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		point  orb.Point
		inside bool
	}{
		{name: "nearby inside", point: NewPoint(28.25, 76.85), inside: true},
		{name: "just outside", point: NewPoint(28.30, 76.84), inside: false},
		{name: "other city", point: NewPoint(28.6139, 77.2090), inside: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.point, testFence)
			assert.Equal(t, tt.inside, result.Inside)
			assert.Equal(t, HaversineKm(tt.point, testFence.Center), result.DistanceKm)
		})
	}
}

func TestHaversineKm_AntipodalStaysFinite(t *testing.T) {
	halfCircumference := math.Pi * EarthRadiusKm

	pairs := [][2]orb.Point{
		{NewPoint(0, 0), NewPoint(0, 180)},
		{NewPoint(0, 0), NewPoint(0, -180)},
		{NewPoint(90, 0), NewPoint(-90, 0)},
		{NewPoint(28.2036569, 76.8400441), NewPoint(-28.2036569, -103.1599559)},
		{NewPoint(45.123456789, -30.987654321), NewPoint(-45.123456789, 149.012345679)},
		{NewPoint(-33.8688, 151.2093), NewPoint(33.8688, -28.7907)},
	}

	for _, pair := range pairs {
		distance := HaversineKm(pair[0], pair[1])

		assert.False(t, math.IsNaN(distance), "distance between %v and %v", pair[0], pair[1])
		assert.InDelta(t, halfCircumference, distance, 0.01)

		result := Classify(pair[1], entity.Geofence{Center: pair[0], RadiusKm: 10})
		assert.False(t, result.Inside)
		assert.False(t, math.IsNaN(result.DistanceKm))
	}
}
