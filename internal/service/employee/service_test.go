package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
)

type stubEmployeeRepo struct {
	byCode  map[string]employee.Employee
	codeErr error
	created []employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "emp-new"
	s.created = append(s.created, emp)
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	if s.codeErr != nil {
		return employee.Employee{}, s.codeErr
	}
	if emp, ok := s.byCode[code]; ok {
		return emp, nil
	}
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

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Code:        "EMP001",
		FullName:    "Asha Nair",
		Email:       "asha.nair@example.com",
		Department:  "Engineering",
		Designation: "Engineer",
	}
}

func TestCreateRegistersActiveEmployee(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := NewEmployeeService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "EMP001", created.Code)
	assert.True(t, created.IsActive)
	require.Len(t, repo.created, 1)
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	repo := &stubEmployeeRepo{
		byCode: map[string]employee.Employee{
			"EMP001": {ID: "emp-1", Code: "EMP001"},
		},
	}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
	assert.Empty(t, repo.created)
}

func TestCreatePropagatesCodeCheckFailure(t *testing.T) {
	repo := &stubEmployeeRepo{codeErr: errors.New("connection refused")}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, employee.ErrEmployeeCodeExists)
	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, repo.created, "insert must not run when the code check fails")
}
