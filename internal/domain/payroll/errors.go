package payroll

import "errors"

var (
	ErrSalaryStructureNotFound   = errors.New("salary structure not found")
	ErrSalaryStructureNameExists = errors.New("salary structure name already exists")
	ErrPayrollRunNotFound        = errors.New("payroll run not found")
	ErrPayrollRunAlreadyExists   = errors.New("payroll run already exists for this period")
	ErrPayrollRunNotDraft        = errors.New("payroll run is not in draft status")
	ErrPayrollRunNotApproved     = errors.New("payroll run is not in approved status")
	ErrPayrollRunProcessed       = errors.New("payroll run has been processed and is immutable")
	ErrPayrollRunEmpty           = errors.New("payroll run has no entries")
	ErrPayrollEntryNotFound      = errors.New("payroll entry not found")
	ErrInvalidPayrollPeriod      = errors.New("invalid payroll period")
)
