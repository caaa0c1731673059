package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelcompanion/pkg/utils"
)

func TestComputeBoundingBoxCentersOnPoint(t *testing.T) {
	box := utils.ComputeBoundingBox(48.8566, 2.3522, 1000)

	assert.InDelta(t, 48.8566, (box.LatMin+box.LatMax)/2, 1e-9)
	assert.InDelta(t, 2.3522, (box.LonMin+box.LonMax)/2, 1e-9)
	assert.Less(t, box.LatMin, box.LatMax)
	assert.Less(t, box.LonMin, box.LonMax)
}

func TestComputeBoundingBoxContainsRadiusCircle(t *testing.T) {
	const (
		lat    = 59.9343
		lon    = 30.3351
		radius = 2000
	)
	box := utils.ComputeBoundingBox(lat, lon, radius)

	// Walk the circle of the requested radius; every point must land
	// inside the box.
	for deg := 0; deg < 360; deg += 15 {
		theta := float64(deg) * math.Pi / 180
		dLat := float64(radius) * math.Cos(theta) / 6378137 * (180 / math.Pi)
		dLon := float64(radius) * math.Sin(theta) / (6378137 * math.Cos(lat*math.Pi/180)) * (180 / math.Pi)

		pLat, pLon := lat+dLat, lon+dLon
		require.GreaterOrEqual(t, pLat, box.LatMin)
		require.LessOrEqual(t, pLat, box.LatMax)
		require.GreaterOrEqual(t, pLon, box.LonMin)
		require.LessOrEqual(t, pLon, box.LonMax)
	}
}

func TestComputeBoundingBoxWidensWithLatitude(t *testing.T) {
	equator := utils.ComputeBoundingBox(0, 10, 1000)
	north := utils.ComputeBoundingBox(60, 10, 1000)

	// Same radius spans more degrees of longitude away from the equator.
	assert.Greater(t, north.LonMax-north.LonMin, equator.LonMax-equator.LonMin)
	assert.InDelta(t, equator.LatMax-equator.LatMin, north.LatMax-north.LatMin, 1e-9)
}
