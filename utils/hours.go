package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	StatusOpen   = "BUKA"
	StatusClosed = "TUTUP"

	DefaultOpeningHour = "08:00"
	DefaultClosingHour = "21:00"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidClock accepts 24-hour "HH:MM".
func ValidClock(value string) bool {
	return clockPattern.MatchString(value)
}

// OpenStatus is BUKA when now falls in [opening, closing) by minute of day.
// Closing before opening is not treated as an overnight window.
func OpenStatus(opening, closing string, now time.Time) string {
	open, ok := minuteOfDay(opening)
	if !ok {
		return StatusClosed
	}
	closeAt, ok := minuteOfDay(closing)
	if !ok {
		return StatusClosed
	}

	current := now.Hour()*60 + now.Minute()
	if current >= open && current < closeAt {
		return StatusOpen
	}
	return StatusClosed
}

// ShortClock trims a "HH:MM:SS" value down to "HH:MM".
func ShortClock(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > 5 {
		return value[:5]
	}
	return value
}

func minuteOfDay(value string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return h*60 + m, true
}
