package employee

import (
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code              string  `json:"code"`
	FullName          string  `json:"full_name"`
	Email             string  `json:"email"`
	Department        string  `json:"department"`
	Designation       string  `json:"designation"`
	SalaryStructureID *string `json:"salary_structure_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string  `json:"-"`
	FullName          *string `json:"full_name"`
	Email             *string `json:"email"`
	Department        *string `json:"department"`
	Designation       *string `json:"designation"`
	SalaryStructureID *string `json:"salary_structure_id"`
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	FullName          string  `json:"full_name"`
	Email             string  `json:"email"`
	Department        string  `json:"department"`
	Designation       string  `json:"designation"`
	SalaryStructureID *string `json:"salary_structure_id,omitempty"`
	IsActive          bool    `json:"is_active"`
}
