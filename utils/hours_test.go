package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.Local)
}

func TestOpenStatus(t *testing.T) {
	tests := []struct {
		name             string
		opening, closing string
		now              time.Time
		want             string
	}{
		{"midday is open", "08:00", "21:00", at(12, 0), StatusOpen},
		{"after closing", "08:00", "21:00", at(22, 0), StatusClosed},
		{"opening minute counts", "08:00", "21:00", at(8, 0), StatusOpen},
		{"closing minute does not", "08:00", "21:00", at(21, 0), StatusClosed},
		{"before opening", "08:00", "21:00", at(7, 59), StatusClosed},
		{"seconds in stored value", "08:00:00", "21:00:00", at(9, 30), StatusOpen},
		{"missing opening", "", "21:00", at(12, 0), StatusClosed},
		{"missing closing", "08:00", "", at(12, 0), StatusClosed},
		{"overnight window is not wrapped", "20:00", "02:00", at(23, 0), StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OpenStatus(tt.opening, tt.closing, tt.now))
		})
	}
}

func TestValidClock(t *testing.T) {
	for _, v := range []string{"00:00", "08:30", "23:59"} {
		assert.True(t, ValidClock(v), v)
	}
	for _, v := range []string{"24:00", "8:30", "12:60", "", "12:00:00"} {
		assert.False(t, ValidClock(v), v)
	}
	assert.Equal(t, "08:00", ShortClock("08:00:00"))
}
