package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
)

type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// Create registers a new active employee. Employee codes are unique.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	_, err := s.employeeRepo.GetByCode(ctx, req.Code)
	if err == nil {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	emp := employee.Employee{
		Code:              req.Code,
		FullName:          req.FullName,
		Email:             req.Email,
		Department:        req.Department,
		Designation:       req.Designation,
		SalaryStructureID: req.SalaryStructureID,
		IsActive:          true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeService) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return s.employeeRepo.GetByCode(ctx, code)
}

func (s *EmployeeService) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.ListActive(ctx)
}

// Update applies the provided fields to an existing employee.
func (s *EmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Designation != nil {
		emp.Designation = *req.Designation
	}
	if req.SalaryStructureID != nil {
		emp.SalaryStructureID = req.SalaryStructureID
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

func (s *EmployeeService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Deactivate(ctx, id)
}
