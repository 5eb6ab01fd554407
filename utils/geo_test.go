package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestDistance(t *testing.T) {
	monas := &Coordinate{Latitude: -6.1754, Longitude: 106.8272}
	bandung := &Coordinate{Latitude: -6.9175, Longitude: 107.6191}

	t.Run("symmetric", func(t *testing.T) {
		ab, ok := Distance(monas, bandung)
		require.True(t, ok)
		ba, ok := Distance(bandung, monas)
		require.True(t, ok)

		assert.InDelta(t, ab, ba, 1e-9)
		assert.InDelta(t, 120.26, ab, 0.05)
	})

	t.Run("same point is zero", func(t *testing.T) {
		d, ok := Distance(monas, monas)
		require.True(t, ok)
		assert.Zero(t, d)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		cases := map[string][2]*Coordinate{
			"nil origin":      {nil, bandung},
			"nil target":      {monas, nil},
			"zero latitude":   {monas, {Latitude: 0, Longitude: 107.6}},
			"zero longitude":  {{Latitude: -6.2, Longitude: 0}, bandung},
			"both zero parts": {{}, {}},
		}
		for name, pair := range cases {
			t.Run(name, func(t *testing.T) {
				_, ok := Distance(pair[0], pair[1])
				assert.False(t, ok)
			})
		}
	})
}

func TestNewCoordinate(t *testing.T) {
	assert.Nil(t, NewCoordinate(nil, ptr(1)))
	assert.Nil(t, NewCoordinate(ptr(1), nil))

	c := NewCoordinate(ptr(-6.2), ptr(106.8))
	require.NotNil(t, c)
	assert.True(t, c.Known())
}

func TestSortByDistance(t *testing.T) {
	type row struct {
		name string
		km   *float64
	}

	rows := []row{
		{"no location A", nil},
		{"far", ptr(12.5)},
		{"here", ptr(0)},
		{"no location B", nil},
		{"near", ptr(1.2)},
		{"jayapura", ptr(3781.9)},
	}

	SortByDistance(rows, func(r row) *float64 { return r.km })

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.name
	}
	assert.Equal(t, []string{
		"here",
		"near",
		"far",
		"jayapura",
		"no location A",
		"no location B",
	}, names)
}

func TestSortByDistanceMissingAfterFarDistances(t *testing.T) {
	jakarta := &Coordinate{Latitude: -6.2088, Longitude: 106.8456}
	jayapura := &Coordinate{Latitude: -2.5337, Longitude: 140.7181}

	km, ok := Distance(jakarta, jayapura)
	require.True(t, ok)
	require.Greater(t, km, UnknownDistanceKm)

	distances := []*float64{nil, &km}
	SortByDistance(distances, func(d *float64) *float64 { return d })

	require.NotNil(t, distances[0])
	assert.InDelta(t, km, *distances[0], 1e-9)
	assert.Nil(t, distances[1])
}
