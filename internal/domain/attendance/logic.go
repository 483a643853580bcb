package attendance

import (
	"math"
	"time"
)

// Below this many worked hours a checkout downgrades the day to Half-day.
const halfDayThresholdHours = 4.0

// WorkedHours returns the checkin-to-checkout span in hours, rounded to
// 2 decimals. Zero until checkout happens or when the clock ran backwards.
func WorkedHours(checkIn, checkOut *time.Time) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	hours := checkOut.Sub(*checkIn).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

// StatusForHours resolves the attendance status at checkout time.
func StatusForHours(hours float64) string {
	if hours < halfDayThresholdHours {
		return StatusHalfDay
	}
	return StatusPresent
}
