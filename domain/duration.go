package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts a wall-clock "HH:MM" string into a minute count.
// Estimates and actual time are stored internally as integer minutes;
// the clock form exists only at the presentation boundary.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidClock
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, ErrInvalidClock
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidClock
	}
	return hours*60 + minutes, nil
}

// FormatClock renders a minute count back into "HH:MM".
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
