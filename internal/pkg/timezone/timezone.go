package timezone

import "time"

// All business-facing calendar rules run in a fixed UTC+05:30 offset.
// It is deliberately not a named tz database zone: there is no DST and no
// historical offset to account for.
const OffsetSeconds = 5*3600 + 30*60

var Business = time.FixedZone("UTC+05:30", OffsetSeconds)

// ToLocal converts a UTC instant to business-local time.
func ToLocal(t time.Time) time.Time {
	return t.In(Business)
}

// ToUTC converts a business-local instant back to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// LocalDateKey returns the business-local calendar date as "YYYY-MM-DD".
func LocalDateKey(t time.Time) string {
	return ToLocal(t).Format("2006-01-02")
}

// LocalMidnight truncates an instant to midnight of its business-local
// calendar date. The result carries the business offset.
func LocalMidnight(t time.Time) time.Time {
	lt := ToLocal(t)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Business)
}

// IsWeekend reports whether the instant falls on a Saturday or Sunday in
// business-local time.
func IsWeekend(t time.Time) bool {
	wd := ToLocal(t).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthBounds returns the first and last business-local calendar days of the
// given month, both at local midnight.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, Business)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}
