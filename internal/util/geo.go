package util

import (
	"togather/internal/model"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const earthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance between two points in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	// Convert coordinates from degrees to S2 points
	point1 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lng1))
	point2 := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lng2))

	// Calculate angle between points
	angle := s1.Angle(s2.ChordAngleBetweenPoints(point1, point2).Angle())

	// Convert angle to distance on Earth's surface
	return angle.Radians() * earthRadiusMeters
}

// HaversineDistanceKm is HaversineDistance in kilometers, for the epicenter
// weighting which works at km scale.
func HaversineDistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	return HaversineDistance(lat1, lng1, lat2, lng2) / 1000
}

// GenerateGrid applies every pairwise combination of the given degree offsets
// to the center latitude and longitude, producing len(offsets)^2 points.
// Offsets are walked latitude-major so the output order is stable.
func GenerateGrid(center model.Coordinate, offsets []float64) []model.Coordinate {
	points := make([]model.Coordinate, 0, len(offsets)*len(offsets))
	for _, dLat := range offsets {
		for _, dLng := range offsets {
			points = append(points, model.Coordinate{
				Lat: center.Lat + dLat,
				Lng: center.Lng + dLng,
			})
		}
	}
	return points
}
