// Package timeutil provides utility functions for working with time values
package timeutil

import (
	"math"
)

const secondsInAMinute = 60

const (
	clock12Hour = "03:04:05 PM"
	clock24Hour = "15:04:05"
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in whole minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)

	mins = total / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// ClockFormat returns the layout used to print a wall clock time.
func ClockFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return clock24Hour
	}

	return clock12Hour
}
