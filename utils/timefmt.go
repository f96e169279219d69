package utils

import "time"

// DisplayTimeLayout renders like "17/10/2026, 3:04:05 pm".
const DisplayTimeLayout = "02/01/2006, 3:04:05 pm"

// FormatDisplayTime formats t in loc. A nil loc falls back to UTC.
func FormatDisplayTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayTimeLayout)
}
