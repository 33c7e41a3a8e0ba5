package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

// localTime builds an instant on a fixed weekday at the given business-local
// wall time.
func localTime(hour, minute int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, 0, 0, timezone.Business)
}

func TestIsLate(t *testing.T) {
	cases := []struct {
		name    string
		checkIn time.Time
		want    bool
	}{
		{"well before cutoff", localTime(8, 30), false},
		{"one minute before cutoff", localTime(9, 14), false},
		{"exactly at cutoff is on time", localTime(9, 15), false},
		{"one second past cutoff", localTime(9, 15).Add(time.Second), true},
		{"one minute past cutoff", localTime(9, 16), true},
		{"late morning", localTime(11, 0), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsLate(c.checkIn))
		})
	}
}

func TestIsLateUsesBusinessLocalTime(t *testing.T) {
	// 03:45 UTC is exactly 09:15 in UTC+05:30, still on time.
	onTime := time.Date(2024, 6, 3, 3, 45, 0, 0, time.UTC)
	assert.False(t, IsLate(onTime))

	// 03:46 UTC is 09:16 local.
	assert.True(t, IsLate(onTime.Add(time.Minute)))
}

func TestCalculateWorkHours(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     float64
	}{
		{"full day", 8 * time.Hour, 8.0},
		{"half hours", 4*time.Hour + 30*time.Minute, 4.5},
		{"rounds to two decimals", 7*time.Hour + 20*time.Minute, 7.33},
		{"short stint", 45 * time.Minute, 0.75},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkIn := localTime(9, 0)
			got := CalculateWorkHours(checkIn, checkIn.Add(c.duration))
			assert.InDelta(t, c.want, got, 0.001)
		})
	}
}

func TestCalculateOvertime(t *testing.T) {
	assert.Equal(t, 0.0, CalculateOvertime(7.5))
	assert.Equal(t, 0.0, CalculateOvertime(8.0))
	assert.InDelta(t, 1.5, CalculateOvertime(9.5), 0.001)
	assert.InDelta(t, 0.25, CalculateOvertime(8.25), 0.001)
}

func TestDetermineStatus(t *testing.T) {
	at := func(hour, minute int) time.Time { return localTime(hour, minute) }
	ptr := func(t time.Time) *time.Time { return &t }

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut *time.Time
		manual   bool
		want     attendance.Status
	}{
		{"manual entry defaults to present", at(11, 0), nil, true, attendance.StatusPresent},
		{"on time, no check-out yet", at(9, 0), nil, false, attendance.StatusPresent},
		{"on time, full day", at(9, 0), ptr(at(17, 0)), false, attendance.StatusPresent},
		{"on time, short day is half-day", at(9, 0), ptr(at(12, 0)), false, attendance.StatusHalfDay},
		{"exactly four hours is not half-day", at(9, 0), ptr(at(13, 0)), false, attendance.StatusPresent},
		{"late arrival", at(9, 20), nil, false, attendance.StatusLate},
		{"late wins over half-day", at(9, 20), ptr(at(11, 0)), false, attendance.StatusLate},
		{"late with full hours stays late", at(9, 20), ptr(at(18, 0)), false, attendance.StatusLate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DetermineStatus(c.checkIn, c.checkOut, c.manual))
		})
	}
}

func TestValidateCheckIn(t *testing.T) {
	now := localTime(10, 0)

	t.Run("defaults to now", func(t *testing.T) {
		got, err := ValidateCheckIn("emp-1", nil, now)
		require.NoError(t, err)
		assert.True(t, got.Equal(now))
	})

	t.Run("accepts a past timestamp", func(t *testing.T) {
		earlier := localTime(9, 5)
		got, err := ValidateCheckIn("emp-1", &earlier, now)
		require.NoError(t, err)
		assert.True(t, got.Equal(earlier))
	})

	t.Run("rejects a future timestamp", func(t *testing.T) {
		future := localTime(10, 1)
		_, err := ValidateCheckIn("emp-1", &future, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
	})

	t.Run("rejects missing employee id", func(t *testing.T) {
		_, err := ValidateCheckIn("", nil, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
	})
}

func TestValidateCheckOut(t *testing.T) {
	checkIn := localTime(9, 0)
	now := localTime(17, 0)

	t.Run("defaults to now", func(t *testing.T) {
		got, err := ValidateCheckOut("att-1", checkIn, nil, now)
		require.NoError(t, err)
		assert.True(t, got.Equal(now))
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		before := localTime(8, 30)
		_, err := ValidateCheckOut("att-1", checkIn, &before, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
	})

	t.Run("rejects check-out equal to check-in", func(t *testing.T) {
		same := checkIn
		_, err := ValidateCheckOut("att-1", checkIn, &same, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
	})

	t.Run("tolerates small clock skew", func(t *testing.T) {
		slightlyAhead := now.Add(4 * time.Minute)
		got, err := ValidateCheckOut("att-1", checkIn, &slightlyAhead, now)
		require.NoError(t, err)
		assert.True(t, got.Equal(slightlyAhead))
	})

	t.Run("rejects check-out beyond the skew window", func(t *testing.T) {
		tooFar := now.Add(6 * time.Minute)
		_, err := ValidateCheckOut("att-1", checkIn, &tooFar, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
	})

	t.Run("rejects missing attendance id", func(t *testing.T) {
		_, err := ValidateCheckOut("", checkIn, nil, now)
		assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
	})
}

func TestValidateDateRange(t *testing.T) {
	start := localTime(0, 0)

	assert.NoError(t, ValidateDateRange(start, start))
	assert.NoError(t, ValidateDateRange(start, start.AddDate(0, 1, 0)))
	assert.ErrorIs(t, ValidateDateRange(start, start.AddDate(0, 0, -1)), attendance.ErrInvalidAttendanceData)
	assert.ErrorIs(t, ValidateDateRange(start, start.AddDate(0, 0, 400)), attendance.ErrInvalidAttendanceData)
}

func TestCalculateSummary(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Status: attendance.StatusPresent, WorkHours: 8, OvertimeHours: 0},
		{EmployeeID: "emp-1", Status: attendance.StatusPresent, WorkHours: 9.5, OvertimeHours: 1.5},
		{EmployeeID: "emp-1", Status: attendance.StatusLate, WorkHours: 7.25, OvertimeHours: 0},
		{EmployeeID: "emp-1", Status: attendance.StatusHalfDay, WorkHours: 3.5, OvertimeHours: 0},
		{EmployeeID: "emp-1", Status: attendance.StatusAbsent},
		{EmployeeID: "emp-1", Status: attendance.StatusOnLeave},
	}

	summary := CalculateSummary(records)

	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, 6, summary.TotalRecords)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 1, summary.OnLeaveDays)
	assert.InDelta(t, 28.25, summary.TotalWorkHours, 0.001)
	assert.InDelta(t, 1.5, summary.TotalOvertimeHours, 0.001)
}

func TestCalculateSummaryEmpty(t *testing.T) {
	summary := CalculateSummary(nil)
	assert.Equal(t, 0, summary.TotalRecords)
	assert.Empty(t, summary.EmployeeID)
}

// Full derivations for typical days: arrival and departure in, status and
// hours out.
func TestStatusDerivationScenarios(t *testing.T) {
	ptr := func(t time.Time) *time.Time { return &t }

	t.Run("late arrival with decent hours stays late", func(t *testing.T) {
		checkIn := localTime(9, 20)
		checkOut := localTime(13, 50)

		hours := CalculateWorkHours(checkIn, checkOut)
		assert.InDelta(t, 4.5, hours, 0.001)
		assert.Equal(t, attendance.StatusLate, DetermineStatus(checkIn, ptr(checkOut), false))
		assert.Equal(t, 0.0, CalculateOvertime(hours))
	})

	t.Run("on-time full day with overtime", func(t *testing.T) {
		checkIn := localTime(8, 50)
		checkOut := localTime(18, 20)

		hours := CalculateWorkHours(checkIn, checkOut)
		assert.InDelta(t, 9.5, hours, 0.001)
		assert.Equal(t, attendance.StatusPresent, DetermineStatus(checkIn, ptr(checkOut), false))
		assert.InDelta(t, 1.5, CalculateOvertime(hours), 0.001)
	})
}
