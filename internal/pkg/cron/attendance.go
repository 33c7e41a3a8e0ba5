package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

const absenteeNote = "Marked by daily attendance reconciliation"

// AttendanceJobs owns the daily reconciliation that backfills a record for
// every active employee who never checked in.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
	clock          timezone.Clock
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	clock timezone.Clock,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
		clock:          clock,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Hourly tick, gated to the last business-local hour of the day.
	scheduler.AddJob("mark_absentees", 1*time.Hour, AtLocalHour(j.clock, 23, j.MarkAbsentees))
}

// MarkAbsentees creates an absent record for every active employee without
// one for today, or an on-leave record when an approved leave covers today.
// One employee's failure is logged and skipped; the batch continues.
func (j *AttendanceJobs) MarkAbsentees(ctx context.Context) error {
	today := timezone.LocalMidnight(j.clock.Now())

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		created, err := j.markEmployee(ctx, emp.ID, today)
		if err != nil {
			slog.Error("cron: failed to mark absentee",
				"employee_id", emp.ID, "date", today.Format("2006-01-02"), "error", err)
			continue
		}
		if created {
			marked++
		}
	}

	slog.Info("cron: absentee reconciliation finished",
		"date", today.Format("2006-01-02"), "employees", len(employees), "marked", marked)
	return nil
}

func (j *AttendanceJobs) markEmployee(ctx context.Context, employeeID string, today time.Time) (bool, error) {
	existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	status := attendance.StatusAbsent
	approved, err := j.leaveRepo.ListApprovedOverlapping(ctx, employeeID, today, today)
	if err != nil {
		return false, err
	}
	if len(approved) > 0 {
		status = attendance.StatusOnLeave
	}

	note := absenteeNote
	_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		Status:     status,
		Notes:      &note,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
