package utils

import "time"

// TripDateLayout is the calendar-date format used for trip start dates and
// per-day dates.
const TripDateLayout = "2006-01-02"

// ParseTripDate parses a YYYY-MM-DD date. The result is midnight UTC so day
// arithmetic never crosses a DST boundary.
func ParseTripDate(s string) (time.Time, error) {
	return time.ParseInLocation(TripDateLayout, s, time.UTC)
}

// TripDayDate returns the date of the zero-based dayIndex of a trip starting at start.
func TripDayDate(start time.Time, dayIndex int) string {
	if start.IsZero() {
		return ""
	}
	return start.AddDate(0, 0, dayIndex).Format(TripDateLayout)
}
