package employee

import "time"

type Employee struct {
	ID                string
	Code              string
	FullName          string
	Email             string
	Department        string
	Designation       string
	SalaryStructureID *string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
