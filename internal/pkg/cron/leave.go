package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

// LeaveJobs owns the periodic balance maintenance: monthly accrual and the
// year-boundary carry-forward.
type LeaveJobs struct {
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.EmployeeRepository
	clock        timezone.Clock
}

func NewLeaveJobs(
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
	clock timezone.Clock,
) *LeaveJobs {
	return &LeaveJobs{
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		clock:        clock,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	// Hourly ticks, gated to the first business-local hour of the first day
	// of the month. Carry-forward runs one hour later on Jan 1 so the new
	// year's rows exist before January accrues into them.
	scheduler.AddJob("accrue_leave_balances", 1*time.Hour,
		AtLocalDay(j.clock, 1, 1, j.AccrueLeaveBalances))
	scheduler.AddJob("carry_forward_leave_balances", 1*time.Hour,
		AtLocalDay(j.clock, 1, 0, func(ctx context.Context) error {
			if timezone.ToLocal(j.clock.Now()).Month() != time.January {
				return nil
			}
			return j.CarryForwardLeaveBalances(ctx)
		}))
}

// AccrueLeaveBalances adds one month's share of each type's annual allotment
// (annual / 12, floored) to every active employee's balance for the current
// year, creating the balance row when missing.
func (j *LeaveJobs) AccrueLeaveBalances(ctx context.Context) error {
	year := timezone.ToLocal(j.clock.Now()).Year()

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	accrued := 0
	for _, emp := range employees {
		for _, leaveType := range leave.AllLeaveTypes {
			monthly := leave.AnnualAllotments[leaveType] / 12
			if monthly == 0 {
				continue
			}
			if err := j.accrue(ctx, emp.ID, leaveType, year, monthly); err != nil {
				slog.Error("cron: failed to accrue leave balance",
					"employee_id", emp.ID, "leave_type", leaveType, "year", year, "error", err)
				continue
			}
			accrued++
		}
	}

	slog.Info("cron: leave accrual finished",
		"year", year, "employees", len(employees), "balances_accrued", accrued)
	return nil
}

func (j *LeaveJobs) accrue(ctx context.Context, employeeID string, leaveType leave.LeaveType, year, days int) error {
	balance, err := j.balanceRepo.Get(ctx, employeeID, leaveType, year)
	if err != nil {
		return err
	}
	if balance == nil {
		_, err = j.balanceRepo.Create(ctx, leave.Balance{
			EmployeeID:    employeeID,
			LeaveType:     leaveType,
			Year:          year,
			TotalDays:     days,
			RemainingDays: days,
		})
		return err
	}

	balance.TotalDays += days
	balance.RemainingDays += days
	return j.balanceRepo.Update(ctx, *balance)
}

// CarryForwardLeaveBalances rolls each employee's unused previous-year
// balance into the new year, capped per type. Types without a cap reset.
func (j *LeaveJobs) CarryForwardLeaveBalances(ctx context.Context) error {
	year := timezone.ToLocal(j.clock.Now()).Year()
	previousYear := year - 1

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	carried := 0
	for _, emp := range employees {
		previous, err := j.balanceRepo.GetByEmployeeAndYear(ctx, emp.ID, previousYear)
		if err != nil {
			slog.Error("cron: failed to load previous-year balances",
				"employee_id", emp.ID, "year", previousYear, "error", err)
			continue
		}
		for _, balance := range previous {
			limit := leave.CarryForwardCaps[balance.LeaveType]
			if limit == 0 || balance.RemainingDays <= 0 {
				continue
			}
			days := balance.RemainingDays
			if days > limit {
				days = limit
			}
			if err := j.carryForward(ctx, emp.ID, balance.LeaveType, year, days); err != nil {
				slog.Error("cron: failed to carry forward leave balance",
					"employee_id", emp.ID, "leave_type", balance.LeaveType, "year", year, "error", err)
				continue
			}
			carried++
		}
	}

	slog.Info("cron: leave carry-forward finished",
		"year", year, "employees", len(employees), "balances_carried", carried)
	return nil
}

func (j *LeaveJobs) carryForward(ctx context.Context, employeeID string, leaveType leave.LeaveType, year, days int) error {
	balance, err := j.balanceRepo.Get(ctx, employeeID, leaveType, year)
	if err != nil {
		return err
	}
	if balance == nil {
		_, err = j.balanceRepo.Create(ctx, leave.Balance{
			EmployeeID:     employeeID,
			LeaveType:      leaveType,
			Year:           year,
			TotalDays:      days,
			RemainingDays:  days,
			CarriedForward: days,
		})
		return err
	}

	balance.TotalDays += days
	balance.RemainingDays += days
	balance.CarriedForward += days
	return j.balanceRepo.Update(ctx, *balance)
}
