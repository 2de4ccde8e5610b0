package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/fastbuka/rider/internal/pkg/models"
)

// NearbyPrecision gives cells of roughly 39km x 19.5km, so a cell and its
// neighbours always reach at least 19.5km from any point inside the cell
const NearbyPrecision uint = 4

// EncodeLocation converts a point to a geohash string
func EncodeLocation(point models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// NearbyCells returns the cell containing point and its eight neighbours
func NearbyCells(point models.Coordinates, precision uint) []string {
	hash := EncodeLocation(point, precision)
	return append([]string{hash}, geohash.Neighbors(hash)...)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Coordinates) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
