package leave

import (
	"fmt"
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

const (
	maxSpanDays     = 365
	maxReasonLength = 500
)

// CalculateLeaveDays returns the inclusive day count of [start, end], both
// truncated to business-local midnight first.
func CalculateLeaveDays(start, end time.Time) int {
	s := timezone.LocalMidnight(start)
	e := timezone.LocalMidnight(end)
	return int(e.Sub(s).Hours()/24) + 1
}

// Overlaps reports whether two closed day intervals intersect. Sharing a
// boundary day counts as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// ValidateRequest applies the calendar rules for a new leave request: the
// start may not be in the past (relative to today's business-local date),
// the range must be well formed and span at most a year, the leave type must
// be known, and the reason bounded.
func ValidateRequest(employeeID string, start, end time.Time, leaveType leave.LeaveType, reason *string, now time.Time) error {
	if employeeID == "" {
		return fmt.Errorf("%w: employee id is required", leave.ErrInvalidLeaveRequest)
	}

	today := timezone.LocalMidnight(now)
	s := timezone.LocalMidnight(start)
	e := timezone.LocalMidnight(end)

	if s.Before(today) {
		return fmt.Errorf("%w: start date must not be in the past", leave.ErrInvalidLeaveRequest)
	}
	if e.Before(s) {
		return fmt.Errorf("%w: end date must not be before start date", leave.ErrInvalidLeaveRequest)
	}
	if e.Sub(s) > maxSpanDays*24*time.Hour {
		return fmt.Errorf("%w: leave span must not exceed %d days", leave.ErrInvalidLeaveRequest, maxSpanDays)
	}
	if !leave.IsValidLeaveType(leaveType) {
		return fmt.Errorf("%w: unknown leave type %q", leave.ErrInvalidLeaveRequest, leaveType)
	}
	if reason != nil && len(*reason) > maxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", leave.ErrInvalidLeaveRequest, maxReasonLength)
	}

	return nil
}

// ValidateApproval gates the pending -> approved/rejected transitions.
func ValidateApproval(status leave.Status) error {
	if status != leave.StatusPending {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}

// ValidateCancellation gates cancellation. Cancelling an already-cancelled
// request is an idempotent no-op; approved and rejected requests are
// terminal.
func ValidateCancellation(status leave.Status) (alreadyCancelled bool, err error) {
	switch status {
	case leave.StatusPending:
		return false, nil
	case leave.StatusCancelled:
		return true, nil
	default:
		return false, fmt.Errorf("%w: cannot cancel a request that is %s", leave.ErrInvalidLeaveRequest, status)
	}
}

// CalculateSummary rolls up one employee's requests for a year. Day totals
// count approved requests only; every leave type appears in ByType.
func CalculateSummary(employeeID string, requests []leave.LeaveRequest, year int) leave.Summary {
	summary := leave.Summary{
		EmployeeID: employeeID,
		Year:       year,
		ByType:     make(map[leave.LeaveType]int, len(leave.AllLeaveTypes)),
	}
	for _, t := range leave.AllLeaveTypes {
		summary.ByType[t] = 0
	}

	for _, req := range requests {
		summary.TotalRequests++
		switch req.Status {
		case leave.StatusApproved:
			summary.ApprovedCount++
			days := CalculateLeaveDays(req.StartDate, req.EndDate)
			summary.TotalDaysTaken += days
			summary.ByType[req.LeaveType] += days
		case leave.StatusRejected:
			summary.RejectedCount++
		case leave.StatusPending:
			summary.PendingCount++
		}
	}

	return summary
}

// DefaultBalances returns the fixed starting allotments for a year with no
// usage recorded yet.
func DefaultBalances(employeeID string, year int) []leave.Balance {
	balances := make([]leave.Balance, 0, len(leave.AllLeaveTypes))
	for _, t := range leave.AllLeaveTypes {
		total := leave.AnnualAllotments[t]
		balances = append(balances, leave.Balance{
			EmployeeID:    employeeID,
			LeaveType:     t,
			Year:          year,
			TotalDays:     total,
			UsedDays:      0,
			RemainingDays: total,
		})
	}
	return balances
}
