package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateSalaryStructureRequest struct {
	Name             string          `json:"name"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	PF               decimal.Decimal `json:"pf"`
	ESI              decimal.Decimal `json:"esi"`
}

func (r *CreateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Basic.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic", Message: "basic must not be negative"})
	}
	for field, v := range map[string]decimal.Decimal{
		"hra":               r.HRA,
		"conveyance":        r.Conveyance,
		"medical_allowance": r.MedicalAllowance,
		"special_allowance": r.SpecialAllowance,
		"professional_tax":  r.ProfessionalTax,
		"pf":                r.PF,
		"esi":               r.ESI,
	} {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateRunRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	EntryID string `json:"-"`
	LOPDays int    `json:"lop_days"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LOPDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "lop_days", Message: "lop_days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	PF               decimal.Decimal `json:"pf"`
	ESI              decimal.Decimal `json:"esi"`
	IsActive         bool            `json:"is_active"`
}

type RunResponse struct {
	ID         string  `json:"id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Status     string  `json:"status"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

type EntryResponse struct {
	ID              string          `json:"id"`
	PayrollRunID    string          `json:"payroll_run_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	EmployeeCode    *string         `json:"employee_code,omitempty"`
	Department      *string         `json:"department,omitempty"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	LOPDays         int             `json:"lop_days"`
	LOPDeduction    decimal.Decimal `json:"lop_deduction"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

type RunSummaryResponse struct {
	PayrollRunID    string          `json:"payroll_run_id"`
	EmployeeCount   int             `json:"employee_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

type DepartmentSummaryResponse struct {
	Department      string          `json:"department"`
	EmployeeCount   int             `json:"employee_count"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}
