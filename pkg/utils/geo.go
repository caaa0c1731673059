package utils

import "math"

const earthRadiusMeters = 6378137

type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// ComputeBoundingBox approximates a circular search radius with an
// axis-aligned lat/lon window (equirectangular approximation). The box
// over-fetches: every point inside the circle is inside the box, but not
// the other way around. Callers use it as a cheap pre-filter on indexed
// latitude/longitude columns.
func ComputeBoundingBox(lat, lon float64, radiusMeters int) BoundingBox {
	deltaLat := float64(radiusMeters) / earthRadiusMeters * (180 / math.Pi)
	deltaLon := float64(radiusMeters) / (earthRadiusMeters * math.Cos(lat*math.Pi/180)) * (180 / math.Pi)
	return BoundingBox{
		LatMin: lat - deltaLat,
		LatMax: lat + deltaLat,
		LonMin: lon - deltaLon,
		LonMax: lon + deltaLon,
	}
}
