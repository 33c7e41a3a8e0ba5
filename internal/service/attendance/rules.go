package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

const (
	// Arrivals strictly after 09:15:00 business-local count as late.
	lateCutoffHour   = 9
	lateCutoffMinute = 15

	// A checked-out day under four hours is a half day; overtime starts
	// after eight.
	halfDayThresholdHours = 4.0
	fullDayHours          = 8.0

	// Check-out may run ahead of the server clock by this much (clock skew).
	checkOutSkew = 5 * time.Minute

	maxRangeDays = 365
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsLate reports whether the check-in's business-local time of day is
// strictly after the 09:15:00 cutoff. Exactly 09:15:00 is on time.
func IsLate(checkIn time.Time) bool {
	lt := timezone.ToLocal(checkIn)
	cutoff := time.Date(lt.Year(), lt.Month(), lt.Day(), lateCutoffHour, lateCutoffMinute, 0, 0, timezone.Business)
	return lt.After(cutoff)
}

// CalculateWorkHours returns checkOut-checkIn in hours, rounded to two
// decimal places.
func CalculateWorkHours(checkIn, checkOut time.Time) float64 {
	return round2(checkOut.Sub(checkIn).Hours())
}

// CalculateOvertime returns the hours worked beyond a full day, never
// negative, rounded to two decimal places.
func CalculateOvertime(workHours float64) float64 {
	if workHours <= fullDayHours {
		return 0
	}
	return round2(workHours - fullDayHours)
}

// DetermineStatus derives the record status. Manual entries default to
// present so an admin can override explicitly afterward. Lateness takes
// priority: a late arrival is never downgraded to half-day regardless of
// hours worked.
func DetermineStatus(checkIn time.Time, checkOut *time.Time, isManualEntry bool) attendance.Status {
	if isManualEntry {
		return attendance.StatusPresent
	}
	if IsLate(checkIn) {
		return attendance.StatusLate
	}
	if checkOut != nil && CalculateWorkHours(checkIn, *checkOut) < halfDayThresholdHours {
		return attendance.StatusHalfDay
	}
	return attendance.StatusPresent
}

// ValidateCheckIn resolves the effective check-in instant, defaulting to now.
// The instant may not lie in the future.
func ValidateCheckIn(employeeID string, timestamp *time.Time, now time.Time) (time.Time, error) {
	if employeeID == "" {
		return time.Time{}, fmt.Errorf("%w: employee id is required", attendance.ErrInvalidAttendanceData)
	}

	checkIn := now
	if timestamp != nil {
		checkIn = *timestamp
	}
	if checkIn.After(now) {
		return time.Time{}, fmt.Errorf("%w: check-in time cannot be in the future", attendance.ErrInvalidAttendanceData)
	}

	return checkIn.UTC(), nil
}

// ValidateCheckOut resolves the effective check-out instant, defaulting to
// now. It must be strictly after checkIn and at most checkOutSkew ahead of
// the server clock.
func ValidateCheckOut(attendanceID string, checkIn time.Time, timestamp *time.Time, now time.Time) (time.Time, error) {
	if attendanceID == "" {
		return time.Time{}, fmt.Errorf("%w: attendance id is required", attendance.ErrInvalidAttendanceData)
	}

	checkOut := now
	if timestamp != nil {
		checkOut = *timestamp
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, fmt.Errorf("%w: check-out time must be after check-in time", attendance.ErrInvalidAttendanceData)
	}
	if checkOut.After(now.Add(checkOutSkew)) {
		return time.Time{}, fmt.Errorf("%w: check-out time cannot be in the future", attendance.ErrInvalidAttendanceData)
	}

	return checkOut.UTC(), nil
}

// ValidateDateRange rejects inverted ranges and ranges longer than a year.
func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start date must not be after end date", attendance.ErrInvalidAttendanceData)
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("%w: date range must not exceed %d days", attendance.ErrInvalidAttendanceData, maxRangeDays)
	}
	return nil
}

// CalculateSummary aggregates records into per-status counts and hour totals.
// The summary's employee id is taken from the first record; callers are
// expected to pass a single employee's records.
func CalculateSummary(records []attendance.Attendance) attendance.Summary {
	var summary attendance.Summary
	if len(records) > 0 {
		summary.EmployeeID = records[0].EmployeeID
	}
	summary.TotalRecords = len(records)

	var workHours, overtimeHours float64
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLate:
			summary.LateDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusOnLeave:
			summary.OnLeaveDays++
		}
		workHours += rec.WorkHours
		overtimeHours += rec.OvertimeHours
	}
	summary.TotalWorkHours = round2(workHours)
	summary.TotalOvertimeHours = round2(overtimeHours)

	return summary
}
