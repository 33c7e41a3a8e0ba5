package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

type stubLeaveRequestRepo struct {
	byEmployeeYear map[string][]leave.LeaveRequest
	listErr        error
}

func (s *stubLeaveRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = "req-new"
	return req, nil
}

func (s *stubLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *stubLeaveRequestRepo) UpdateStatus(ctx context.Context, req leave.LeaveRequest) error {
	return nil
}

func (s *stubLeaveRequestRepo) ListByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byEmployeeYear[employeeID], nil
}

func (s *stubLeaveRequestRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	return false, nil
}

func (s *stubLeaveRequestRepo) ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

type stubBalanceRepo struct{}

func (s *stubBalanceRepo) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	return nil, nil
}

func (s *stubBalanceRepo) Get(ctx context.Context, employeeID string, leaveType leave.LeaveType, year int) (*leave.Balance, error) {
	return nil, nil
}

func (s *stubBalanceRepo) Create(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	return balance, nil
}

func (s *stubBalanceRepo) Update(ctx context.Context, balance leave.Balance) error { return nil }

type stubEmployeeRepo struct{}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, IsActive: true}, nil
}

func (s *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) ListActiveWithSalaryStructure(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (s *stubEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func newTestLeaveService(requestRepo *stubLeaveRequestRepo) *LeaveService {
	clock := timezone.FixedClock{Instant: time.Date(2024, 7, 1, 6, 0, 0, 0, time.UTC)}
	return NewLeaveService(requestRepo, &stubBalanceRepo{}, &stubEmployeeRepo{}, clock)
}

func TestListRequestsReturnsEmployeeYear(t *testing.T) {
	start := time.Date(2024, 7, 10, 0, 0, 0, 0, timezone.Business)
	repo := &stubLeaveRequestRepo{
		byEmployeeYear: map[string][]leave.LeaveRequest{
			"emp-1": {
				{ID: "req-1", EmployeeID: "emp-1", StartDate: start, EndDate: start, LeaveType: leave.LeaveTypeAnnual, Status: leave.StatusPending},
				{ID: "req-2", EmployeeID: "emp-1", StartDate: start.AddDate(0, 1, 0), EndDate: start.AddDate(0, 1, 2), LeaveType: leave.LeaveTypeSick, Status: leave.StatusApproved},
			},
		},
	}
	svc := newTestLeaveService(repo)

	requests, err := svc.ListRequests(context.Background(), "emp-1", 2024)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-1", requests[0].ID)
	assert.Equal(t, "req-2", requests[1].ID)
}

func TestListRequestsRequiresEmployeeID(t *testing.T) {
	svc := newTestLeaveService(&stubLeaveRequestRepo{})

	_, err := svc.ListRequests(context.Background(), "", 2024)
	assert.ErrorIs(t, err, leave.ErrInvalidLeaveRequest)
}

func TestListRequestsPropagatesStorageError(t *testing.T) {
	repo := &stubLeaveRequestRepo{listErr: errors.New("connection refused")}
	svc := newTestLeaveService(repo)

	_, err := svc.ListRequests(context.Background(), "emp-1", 2024)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}
