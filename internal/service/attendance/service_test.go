package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/timezone"
)

type stubAttendanceRepo struct {
	created []attendance.Attendance
	deleted []string
}

func (s *stubAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = "att-new"
	s.created = append(s.created, att)
	return att, nil
}

func (s *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id string) error {
	if id == "missing" {
		return attendance.ErrAttendanceNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) CountByStatusInRange(ctx context.Context, employeeID string, status attendance.Status, start, end time.Time) (int, error) {
	return 0, nil
}

type stubActiveEmployeeRepo struct{}

func (s *stubActiveEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubActiveEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id, Code: "EMP001", IsActive: true}, nil
}

func (s *stubActiveEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubActiveEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubActiveEmployeeRepo) ListActiveWithSalaryStructure(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubActiveEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (s *stubActiveEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func TestCreateManualEntryUsesRequestDate(t *testing.T) {
	repo := &stubAttendanceRepo{}
	clock := timezone.FixedClock{Instant: time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, &stubActiveEmployeeRepo{}, clock)

	record, err := svc.CreateManualEntry(context.Background(), attendance.ManualEntryRequest{
		EmployeeID: "emp-1",
		Date:       "2024-07-05",
	})
	require.NoError(t, err)

	want := time.Date(2024, 7, 5, 0, 0, 0, 0, timezone.Business)
	assert.True(t, record.Date.Equal(want), "expected %v, got %v", want, record.Date)
	assert.True(t, record.IsManualEntry)
	assert.Equal(t, attendance.StatusPresent, record.Status)
}

func TestCreateManualEntryRejectsBadDate(t *testing.T) {
	repo := &stubAttendanceRepo{}
	clock := timezone.FixedClock{Instant: time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, &stubActiveEmployeeRepo{}, clock)

	_, err := svc.CreateManualEntry(context.Background(), attendance.ManualEntryRequest{
		EmployeeID: "emp-1",
		Date:       "05-07-2024",
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := &stubAttendanceRepo{}
	clock := timezone.FixedClock{Instant: time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, &stubActiveEmployeeRepo{}, clock)

	require.NoError(t, svc.Delete(context.Background(), "att-1"))
	assert.Equal(t, []string{"att-1"}, repo.deleted)
}

func TestDeleteRequiresID(t *testing.T) {
	repo := &stubAttendanceRepo{}
	clock := timezone.FixedClock{Instant: time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, &stubActiveEmployeeRepo{}, clock)

	err := svc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, attendance.ErrInvalidAttendanceData)
}

func TestDeletePropagatesNotFound(t *testing.T) {
	repo := &stubAttendanceRepo{}
	clock := timezone.FixedClock{Instant: time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(repo, &stubActiveEmployeeRepo{}, clock)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
