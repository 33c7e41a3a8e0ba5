package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)

	// ListActiveWithSalaryStructure returns active employees that have a
	// salary structure assigned; the payroll run only pays these.
	ListActiveWithSalaryStructure(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
	Deactivate(ctx context.Context, id string) error
}
