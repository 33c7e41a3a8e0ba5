package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

func day(d int) time.Time {
	return time.Date(2024, 7, d, 0, 0, 0, 0, timezone.Business)
}

func TestCalculateLeaveDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(10), day(10), 1},
		{"one week inclusive", day(10), day(16), 7},
		{"two days", day(10), day(11), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CalculateLeaveDays(c.start, c.end))
		})
	}
}

func TestCalculateLeaveDaysTruncatesToLocalDates(t *testing.T) {
	// Timestamps at different wall times on the same local dates count the
	// same as their midnight-aligned equivalents.
	start := day(10).Add(9 * time.Hour)
	end := day(12).Add(18 * time.Hour)
	assert.Equal(t, 3, CalculateLeaveDays(start, end))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", day(1), day(5), day(6), day(10), false},
		{"shared boundary day", day(1), day(5), day(5), day(10), true},
		{"contained", day(3), day(4), day(1), day(10), true},
		{"identical", day(1), day(5), day(1), day(5), true},
		{"reversed disjoint", day(6), day(10), day(1), day(5), false},
		{"partial overlap", day(1), day(7), day(5), day(10), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd))
		})
	}
}

func TestValidateRequest(t *testing.T) {
	now := day(10).Add(11 * time.Hour)
	reason := "family function"

	t.Run("valid request", func(t *testing.T) {
		err := ValidateRequest("emp-1", day(12), day(14), leave.LeaveTypeAnnual, &reason, now)
		assert.NoError(t, err)
	})

	t.Run("starting today is allowed", func(t *testing.T) {
		err := ValidateRequest("emp-1", day(10), day(10), leave.LeaveTypeSick, nil, now)
		assert.NoError(t, err)
	})

	t.Run("start in the past", func(t *testing.T) {
		err := ValidateRequest("emp-1", day(9), day(12), leave.LeaveTypeAnnual, nil, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})

	t.Run("end before start", func(t *testing.T) {
		err := ValidateRequest("emp-1", day(14), day(12), leave.LeaveTypeAnnual, nil, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})

	t.Run("span over a year", func(t *testing.T) {
		err := ValidateRequest("emp-1", day(12), day(12).AddDate(1, 0, 1), leave.LeaveTypeUnpaid, nil, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		err := ValidateRequest("emp-1", day(12), day(14), leave.LeaveType("sabbatical"), nil, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})

	t.Run("missing employee id", func(t *testing.T) {
		err := ValidateRequest("", day(12), day(14), leave.LeaveTypeAnnual, nil, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})

	t.Run("oversized reason", func(t *testing.T) {
		long := string(make([]byte, 501))
		err := ValidateRequest("emp-1", day(12), day(14), leave.LeaveTypeAnnual, &long, now)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})
}

func TestValidateApproval(t *testing.T) {
	assert.NoError(t, ValidateApproval(leave.StatusPending))
	assert.ErrorIs(t, ValidateApproval(leave.StatusApproved), leave.ErrLeaveRequestAlreadyProcessed)
	assert.ErrorIs(t, ValidateApproval(leave.StatusRejected), leave.ErrLeaveRequestAlreadyProcessed)
	assert.ErrorIs(t, ValidateApproval(leave.StatusCancelled), leave.ErrLeaveRequestAlreadyProcessed)
}

func TestValidateCancellation(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		already, err := ValidateCancellation(leave.StatusPending)
		assert.NoError(t, err)
		assert.False(t, already)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		already, err := ValidateCancellation(leave.StatusCancelled)
		assert.NoError(t, err)
		assert.True(t, already)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		_, err := ValidateCancellation(leave.StatusApproved)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		_, err := ValidateCancellation(leave.StatusRejected)
		assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
	})
}

func TestCalculateSummary(t *testing.T) {
	requests := []leave.LeaveRequest{
		{Status: leave.StatusApproved, LeaveType: leave.LeaveTypeAnnual, StartDate: day(1), EndDate: day(5)},
		{Status: leave.StatusApproved, LeaveType: leave.LeaveTypeSick, StartDate: day(10), EndDate: day(10)},
		{Status: leave.StatusRejected, LeaveType: leave.LeaveTypeCasual, StartDate: day(12), EndDate: day(14)},
		{Status: leave.StatusPending, LeaveType: leave.LeaveTypeAnnual, StartDate: day(20), EndDate: day(22)},
		{Status: leave.StatusCancelled, LeaveType: leave.LeaveTypeAnnual, StartDate: day(25), EndDate: day(25)},
	}

	summary := CalculateSummary("emp-1", requests, 2024)

	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 5, summary.TotalRequests)
	assert.Equal(t, 2, summary.ApprovedCount)
	assert.Equal(t, 1, summary.RejectedCount)
	assert.Equal(t, 1, summary.PendingCount)

	// Only approved requests accrue days.
	assert.Equal(t, 6, summary.TotalDaysTaken)
	assert.Equal(t, 5, summary.ByType[leave.LeaveTypeAnnual])
	assert.Equal(t, 1, summary.ByType[leave.LeaveTypeSick])
	assert.Equal(t, 0, summary.ByType[leave.LeaveTypeCasual])

	// Every known type has an entry, even untouched ones.
	assert.Len(t, summary.ByType, len(leave.AllLeaveTypes))
}

func TestDefaultBalances(t *testing.T) {
	balances := DefaultBalances("emp-1", 2024)

	assert.Len(t, balances, len(leave.AllLeaveTypes))
	byType := make(map[leave.LeaveType]leave.Balance, len(balances))
	for _, b := range balances {
		assert.Equal(t, "emp-1", b.EmployeeID)
		assert.Equal(t, 2024, b.Year)
		assert.Equal(t, 0, b.UsedDays)
		assert.Equal(t, b.TotalDays, b.RemainingDays)
		byType[b.LeaveType] = b
	}

	assert.Equal(t, 20, byType[leave.LeaveTypeAnnual].TotalDays)
	assert.Equal(t, 10, byType[leave.LeaveTypeSick].TotalDays)
	assert.Equal(t, 180, byType[leave.LeaveTypeMaternity].TotalDays)
	assert.Equal(t, 0, byType[leave.LeaveTypeOther].TotalDays)
}
