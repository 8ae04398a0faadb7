package domain

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// coordinates. The result is symmetric in its arguments and zero when they
// are equal. Callers are expected to check [Coordinate.Valid] first; the
// formula itself accepts any values.
func Haversine(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	centralAngle := 2 * math.Asin(math.Sqrt(h))

	return centralAngle * EarthRadiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
