package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure is HR-owned configuration referenced by employees. The five
// allowance components are additive gross salary; professional tax, PF and
// ESI are fixed monthly deductions.
type SalaryStructure struct {
	ID               string
	Name             string
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	SpecialAllowance decimal.Decimal
	ProfessionalTax  decimal.Decimal
	PF               decimal.Decimal
	ESI              decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RunStatus string

const (
	RunStatusDraft     RunStatus = "draft"
	RunStatusApproved  RunStatus = "approved"
	RunStatusProcessed RunStatus = "processed"
)

// PayrollRun is one month/year processing cycle, unique per period.
type PayrollRun struct {
	ID         string
	Month      int
	Year       int
	Status     RunStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PayrollEntry is one employee's result within a run. Entries are replaced
// wholesale whenever the run is recalculated in draft.
type PayrollEntry struct {
	ID              string
	PayrollRunID    string
	EmployeeID      string
	GrossSalary     decimal.Decimal
	LOPDays         int
	LOPDeduction    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

// RunSummary totals a run's entries.
type RunSummary struct {
	PayrollRunID    string
	EmployeeCount   int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}

// DepartmentSummary groups a run's entries by the employee's current
// department, resolved at read time.
type DepartmentSummary struct {
	Department      string
	EmployeeCount   int
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
}
