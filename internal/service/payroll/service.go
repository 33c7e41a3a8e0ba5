package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

type PayrollService struct {
	payrollRepo    payroll.PayrollRepository
	structureRepo  payroll.SalaryStructureRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	clock          timezone.Clock
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	structureRepo payroll.SalaryStructureRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	clock timezone.Clock,
) *PayrollService {
	return &PayrollService{
		payrollRepo:    payrollRepo,
		structureRepo:  structureRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		clock:          clock,
	}
}

// CreateRun opens a draft run for a month/year period. Periods are unique.
func (s *PayrollService) CreateRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.PayrollRun, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRun{}, err
	}

	existing, err := s.payrollRepo.GetRunByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to check existing payroll run: %w", err)
	}
	if existing != nil {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunAlreadyExists
	}

	run := payroll.PayrollRun{
		Month:  req.Month,
		Year:   req.Year,
		Status: payroll.RunStatusDraft,
	}

	created, err := s.payrollRepo.CreateRun(ctx, run)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

// Calculate rebuilds a draft run's entries from the period's attendance and
// approved leave. The previous entry set is replaced in one transaction, so
// a recalculation is idempotent for unchanged inputs and never observable
// half-done.
func (s *PayrollService) Calculate(ctx context.Context, runID string) ([]payroll.PayrollEntry, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != payroll.RunStatusDraft {
		return nil, payroll.ErrPayrollRunNotDraft
	}

	monthStart, monthEnd := PeriodBounds(run)

	employees, err := s.employeeRepo.ListActiveWithSalaryStructure(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	entries := make([]payroll.PayrollEntry, 0, len(employees))
	for _, emp := range employees {
		structure, err := s.structureRepo.GetByID(ctx, *emp.SalaryStructureID)
		if err != nil {
			return nil, fmt.Errorf("failed to get salary structure for employee %s: %w", emp.ID, err)
		}

		absentCount, err := s.attendanceRepo.CountByStatusInRange(ctx, emp.ID, attendance.StatusAbsent, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to count absences for employee %s: %w", emp.ID, err)
		}

		approved, err := s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to list approved leave for employee %s: %w", emp.ID, err)
		}
		leaveDays := LeaveDaysInMonth(approved, monthStart, monthEnd)

		entries = append(entries, ComputeEntry(run.ID, emp.ID, structure, absentCount, leaveDays))
	}

	if err := s.payrollRepo.ReplaceEntries(ctx, run.ID, entries); err != nil {
		return nil, fmt.Errorf("failed to replace payroll entries: %w", err)
	}

	slog.Info("payroll run calculated",
		"run_id", run.ID, "month", run.Month, "year", run.Year, "entries", len(entries))

	return s.payrollRepo.ListEntries(ctx, run.ID)
}

// Approve moves a calculated draft run to approved. An empty run cannot be
// approved.
func (s *PayrollService) Approve(ctx context.Context, runID, approverID string) (payroll.PayrollRun, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	if run.Status != payroll.RunStatusDraft {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunNotDraft
	}

	count, err := s.payrollRepo.CountEntries(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to count payroll entries: %w", err)
	}
	if count == 0 {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunEmpty
	}

	now := s.clock.Now()
	run.Status = payroll.RunStatusApproved
	run.ApprovedBy = &approverID
	run.ApprovedAt = &now

	if err := s.payrollRepo.UpdateRunStatus(ctx, run); err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to update payroll run: %w", err)
	}

	return run, nil
}

// Process marks an approved run as processed. Processed runs are immutable.
func (s *PayrollService) Process(ctx context.Context, runID string) (payroll.PayrollRun, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}
	if run.Status != payroll.RunStatusApproved {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunNotApproved
	}

	run.Status = payroll.RunStatusProcessed
	if err := s.payrollRepo.UpdateRunStatus(ctx, run); err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to update payroll run: %w", err)
	}

	return run, nil
}

// DeleteRun removes a run while it is still a draft.
func (s *PayrollService) DeleteRun(ctx context.Context, runID string) error {
	run, err := s.payrollRepo.GetRunByID(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status != payroll.RunStatusDraft {
		return payroll.ErrPayrollRunProcessed
	}

	if err := s.payrollRepo.DeleteRun(ctx, run.ID); err != nil {
		return fmt.Errorf("failed to delete payroll run: %w", err)
	}
	return nil
}

// UpdateEntry applies a manual LOP-day override to one entry while the
// parent run is still a draft.
func (s *PayrollService) UpdateEntry(ctx context.Context, req payroll.UpdateEntryRequest) (payroll.PayrollEntry, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollEntry{}, err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, req.EntryID)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, entry.PayrollRunID)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}
	if run.Status != payroll.RunStatusDraft {
		return payroll.PayrollEntry{}, payroll.ErrPayrollRunNotDraft
	}

	emp, err := s.employeeRepo.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}
	if emp.SalaryStructureID == nil {
		return payroll.PayrollEntry{}, payroll.ErrSalaryStructureNotFound
	}
	structure, err := s.structureRepo.GetByID(ctx, *emp.SalaryStructureID)
	if err != nil {
		return payroll.PayrollEntry{}, err
	}

	entry = RecomputeEntry(entry, structure, req.LOPDays)
	if err := s.payrollRepo.UpdateEntry(ctx, entry); err != nil {
		return payroll.PayrollEntry{}, fmt.Errorf("failed to update payroll entry: %w", err)
	}

	return entry, nil
}

// GetRun fetches one run.
func (s *PayrollService) GetRun(ctx context.Context, runID string) (payroll.PayrollRun, error) {
	return s.payrollRepo.GetRunByID(ctx, runID)
}

// ListRuns lists runs for a year.
func (s *PayrollService) ListRuns(ctx context.Context, year int) ([]payroll.PayrollRun, error) {
	return s.payrollRepo.ListRuns(ctx, year)
}

// ListEntries lists a run's entries with employee details joined.
func (s *PayrollService) ListEntries(ctx context.Context, runID string) ([]payroll.PayrollEntry, error) {
	if _, err := s.payrollRepo.GetRunByID(ctx, runID); err != nil {
		return nil, err
	}
	return s.payrollRepo.ListEntries(ctx, runID)
}

// RunSummary totals a run's entries.
func (s *PayrollService) RunSummary(ctx context.Context, runID string) (payroll.RunSummary, error) {
	if _, err := s.payrollRepo.GetRunByID(ctx, runID); err != nil {
		return payroll.RunSummary{}, err
	}
	return s.payrollRepo.GetRunSummary(ctx, runID)
}

// DepartmentSummaries groups a run's totals by the employees' current
// departments. Membership is resolved at read time, not snapshotted at the
// payroll period.
func (s *PayrollService) DepartmentSummaries(ctx context.Context, runID string) ([]payroll.DepartmentSummary, error) {
	if _, err := s.payrollRepo.GetRunByID(ctx, runID); err != nil {
		return nil, err
	}
	return s.payrollRepo.GetDepartmentSummaries(ctx, runID)
}
