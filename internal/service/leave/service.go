package leave

import (
	"context"
	"fmt"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

type LeaveService struct {
	requestRepo  leave.LeaveRequestRepository
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.EmployeeRepository
	clock        timezone.Clock
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
	clock timezone.Clock,
) *LeaveService {
	return &LeaveService{
		requestRepo:  requestRepo,
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		clock:        clock,
	}
}

// CreateRequest validates and files a new pending leave request. A request
// conflicting with any live request for the same employee is rejected.
func (s *LeaveService) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	start := timezone.LocalMidnight(req.ParsedStart.In(timezone.Business))
	end := timezone.LocalMidnight(req.ParsedEnd.In(timezone.Business))

	if err := ValidateRequest(emp.ID, start, end, leave.LeaveType(req.LeaveType), req.Reason, s.clock.Now()); err != nil {
		return leave.LeaveRequest{}, err
	}

	hasOverlap, err := s.requestRepo.HasOverlapping(ctx, emp.ID, start, end)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if hasOverlap {
		return leave.LeaveRequest{}, fmt.Errorf("%w: overlaps an existing leave request", leave.ErrInvalidLeaveRequest)
	}

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  leave.LeaveType(req.LeaveType),
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Approve moves a pending request to approved and charges the employee's
// balance for the year.
func (s *LeaveService) Approve(ctx context.Context, requestID, approverID string) (leave.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := ValidateApproval(request.Status); err != nil {
		return leave.LeaveRequest{}, err
	}

	now := s.clock.Now()
	request.Status = leave.StatusApproved
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now

	if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	if err := s.chargeBalance(ctx, request); err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// Reject moves a pending request to rejected.
func (s *LeaveService) Reject(ctx context.Context, requestID, approverID string, reason *string) (leave.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := ValidateApproval(request.Status); err != nil {
		return leave.LeaveRequest{}, err
	}

	now := s.clock.Now()
	request.Status = leave.StatusRejected
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now
	if reason != nil {
		request.Reason = reason
	}

	if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return request, nil
}

// Cancel withdraws a pending request. Cancelling twice is a no-op; approved
// and rejected requests cannot be cancelled.
func (s *LeaveService) Cancel(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	alreadyCancelled, err := ValidateCancellation(request.Status)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if alreadyCancelled {
		return request, nil
	}

	request.Status = leave.StatusCancelled
	if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return request, nil
}

// ListRequests returns an employee's requests overlapping a year, any status.
func (s *LeaveService) ListRequests(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee id is required", leave.ErrInvalidLeaveRequest)
	}

	requests, err := s.requestRepo.ListByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Summary rolls up an employee's requests for a year.
func (s *LeaveService) Summary(ctx context.Context, employeeID string, year int) (leave.Summary, error) {
	if employeeID == "" {
		return leave.Summary{}, fmt.Errorf("%w: employee id is required", leave.ErrInvalidLeaveRequest)
	}

	requests, err := s.requestRepo.ListByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return CalculateSummary(employeeID, requests, year), nil
}

// Balances returns the employee's balance rows for a year, falling back to
// the default allotments when none have been materialized yet.
func (s *LeaveService) Balances(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee id is required", leave.ErrInvalidLeaveRequest)
	}

	balances, err := s.balanceRepo.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	if len(balances) == 0 {
		return DefaultBalances(employeeID, year), nil
	}

	return balances, nil
}

// chargeBalance records an approval against the per-type yearly balance,
// materializing the row from the default allotment when missing.
func (s *LeaveService) chargeBalance(ctx context.Context, request leave.LeaveRequest) error {
	days := CalculateLeaveDays(request.StartDate, request.EndDate)
	year := timezone.ToLocal(request.StartDate).Year()

	balance, err := s.balanceRepo.Get(ctx, request.EmployeeID, request.LeaveType, year)
	if err != nil {
		return fmt.Errorf("failed to get leave balance: %w", err)
	}
	if balance == nil {
		created, err := s.balanceRepo.Create(ctx, leave.Balance{
			EmployeeID:    request.EmployeeID,
			LeaveType:     request.LeaveType,
			Year:          year,
			TotalDays:     leave.AnnualAllotments[request.LeaveType],
			RemainingDays: leave.AnnualAllotments[request.LeaveType],
		})
		if err != nil {
			return fmt.Errorf("failed to create leave balance: %w", err)
		}
		balance = &created
	}

	balance.UsedDays += days
	balance.RemainingDays = balance.TotalDays - balance.UsedDays
	if err := s.balanceRepo.Update(ctx, *balance); err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}

	return nil
}
