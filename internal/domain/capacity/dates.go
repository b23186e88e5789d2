package capacity

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

const msPerHour = int64(time.Hour / time.Millisecond)

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to UTC midnight of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last millisecond of t's calendar date.
func EndOfDay(t time.Time) time.Time {
	return Day(t).Add(24*time.Hour - time.Millisecond)
}

// MsToHours converts milliseconds to decimal hours without rounding.
func MsToHours(ms int64) float64 {
	return float64(ms) / float64(msPerHour)
}
