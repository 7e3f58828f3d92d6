package kernel

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusKm is the mean Earth radius used by Haversine.
	EarthRadiusKm = 6371.0

	// DefaultCourierSpeedKmh is the in-city travel speed assumed when nothing better is known.
	DefaultCourierSpeedKmh = 25.0
)

// Haversine returns the great-circle distance in kilometres between two coordinates given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// EtaSeconds converts a distance into travel time at speedKmh, truncated to whole seconds.
// It is 0 for non-positive distances; speeds below 1 km/h are treated as 1 km/h.
func EtaSeconds(distanceKm, speedKmh float64) int {
	if distanceKm <= 0 {
		return 0
	}
	speed := math.Max(speedKmh, 1)

	return int(distanceKm / speed * 3600)
}

// FormatEta renders seconds as "N daqiqa" or "H soat M daqiqa", using whole minutes
// rounded half to even from seconds/60, so 30s is "0 daqiqa" and 150s is "2 daqiqa".
// Non-positive input renders as "".
func FormatEta(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	minutes := int(math.RoundToEven(float64(seconds) / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d daqiqa", minutes)
	}

	return fmt.Sprintf("%d soat %d daqiqa", minutes/60, minutes%60)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
