package utils

import (
	"cmp"
	"math"
	"slices"
)

const (
	EarthRadiusKm = 6371.0

	// UnknownDistanceKm is the nominal distance of a business without
	// coordinates. It is not a rank: SortByDistance puts such businesses
	// after every known distance, however far.
	UnknownDistanceKm = 999.0
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate returns nil unless both parts are present.
func NewCoordinate(lat, lon *float64) *Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &Coordinate{Latitude: *lat, Longitude: *lon}
}

// Known reports whether the coordinate can take part in a distance
// calculation. Zero parts count as unset, matching how the mobile client
// stored "no location yet".
func (c *Coordinate) Known() bool {
	return c != nil && c.Latitude != 0 && c.Longitude != 0
}

// Distance returns the haversine great-circle distance in kilometers.
// ok is false when either point is missing.
func Distance(from, to *Coordinate) (km float64, ok bool) {
	if !from.Known() || !to.Known() {
		return 0, false
	}

	dLat := toRadians(to.Latitude - from.Latitude)
	dLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Latitude))*math.Cos(toRadians(to.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, true
}

// SortByDistance orders items nearest first. Items without a distance go
// last; ties keep their original order.
func SortByDistance[T any](items []T, distanceOf func(T) *float64) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(rankDistance(distanceOf(a)), rankDistance(distanceOf(b)))
	})
}

func rankDistance(d *float64) float64 {
	if d == nil {
		return math.Inf(1)
	}
	return *d
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
