package tracker

import "time"

// The tracking day rolls over at 3 AM Central so late-night snacks count
// toward the previous day.
const dayRolloverHour = 3

var trackingZone = mustLoadZone("America/Chicago")

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TrackingDate returns the logical tracking date for the given instant.
func TrackingDate(now time.Time) time.Time {
	local := now.In(trackingZone)
	if local.Hour() < dayRolloverHour {
		local = local.AddDate(0, 0, -1)
	}
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, trackingZone)
}

// TrackingBounds returns the [start, end) window of the current tracking day.
func TrackingBounds(now time.Time) (time.Time, time.Time) {
	date := TrackingDate(now)
	start := date.Add(dayRolloverHour * time.Hour)
	return start, start.AddDate(0, 0, 1)
}
