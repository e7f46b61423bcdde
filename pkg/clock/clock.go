package clock

import (
	"math"
	"strings"
	"time"
)

// Layout is the wall-clock format used for shift start and end times.
const Layout = "15:04"

// Parse reads an HH:MM time of day as a duration since midnight.
func Parse(s string) (time.Duration, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Valid reports whether s is a well-formed HH:MM time of day.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// ComputeHours returns the length of a shift running from start to end, in
// hours rounded to two decimals (half away from zero). An end earlier than the
// start means the shift crossed midnight. Empty or malformed input yields 0.
func ComputeHours(start, end string) float64 {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return 0
	}
	s, err := Parse(start)
	if err != nil {
		return 0
	}
	e, err := Parse(end)
	if err != nil {
		return 0
	}
	if e < s {
		e += 24 * time.Hour
	}
	return math.Round((e-s).Hours()*100) / 100
}
