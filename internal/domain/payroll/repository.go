package payroll

import "context"

type SalaryStructureRepository interface {
	Create(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
	GetByID(ctx context.Context, id string) (SalaryStructure, error)
	GetByName(ctx context.Context, name string) (SalaryStructure, error)
	List(ctx context.Context, activeOnly bool) ([]SalaryStructure, error)
	Update(ctx context.Context, s SalaryStructure) error
	Delete(ctx context.Context, id string) error
}

type PayrollRepository interface {
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetRunByID(ctx context.Context, id string) (PayrollRun, error)
	GetRunByPeriod(ctx context.Context, month, year int) (*PayrollRun, error)
	ListRuns(ctx context.Context, year int) ([]PayrollRun, error)
	UpdateRunStatus(ctx context.Context, run PayrollRun) error
	DeleteRun(ctx context.Context, id string) error

	// ReplaceEntries atomically swaps all entries of a run for the given set.
	// A concurrent reader never observes the run with zero entries.
	ReplaceEntries(ctx context.Context, runID string, entries []PayrollEntry) error

	ListEntries(ctx context.Context, runID string) ([]PayrollEntry, error)
	CountEntries(ctx context.Context, runID string) (int, error)
	GetEntryByID(ctx context.Context, id string) (PayrollEntry, error)
	UpdateEntry(ctx context.Context, entry PayrollEntry) error

	GetRunSummary(ctx context.Context, runID string) (RunSummary, error)
	GetDepartmentSummaries(ctx context.Context, runID string) ([]DepartmentSummary, error)
}
