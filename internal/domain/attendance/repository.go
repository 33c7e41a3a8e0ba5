package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the
	// employee on that business-local day. Used to keep check-in idempotent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error
	Delete(ctx context.Context, id string) error

	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// CountByStatusInRange counts records with the given status for one
	// employee across [start, end] inclusive. Feeds payroll LOP counting.
	CountByStatusInRange(ctx context.Context, employeeID string, status Status, start, end time.Time) (int, error)
}
