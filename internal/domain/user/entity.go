package user

import "time"

// User is an account that can sign in. Most users are linked to an employee
// record; admin accounts may not be.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role is carried in the access-token claims and checked by route middleware.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// CanManagePayroll reports whether the role may create, calculate, approve or
// process payroll runs.
func (r Role) CanManagePayroll() bool {
	return r == RoleAdmin || r == RoleHR
}

// CanApproveLeave reports whether the role may approve or reject leave
// requests for other employees.
func (r Role) CanApproveLeave() bool {
	return r == RoleAdmin || r == RoleHR
}
