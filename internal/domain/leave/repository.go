package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, req LeaveRequest) error

	ListByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)

	// HasOverlapping reports whether any non-rejected, non-cancelled request
	// for the employee intersects [start, end] (closed interval).
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// ListApprovedOverlapping returns approved requests intersecting
	// [start, end]; payroll clips these to the month to count leave days.
	ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}

type LeaveBalanceRepository interface {
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]Balance, error)
	Get(ctx context.Context, employeeID string, leaveType LeaveType, year int) (*Balance, error)
	Create(ctx context.Context, balance Balance) (Balance, error)
	Update(ctx context.Context, balance Balance) error
}
