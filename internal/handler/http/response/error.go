package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-hr/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User / access errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidEmployee):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
		Conflict(w, "Attendance record already exists for today")
	case errors.Is(err, attendance.ErrNoCheckInRecord):
		BadRequest(w, "Attendance record has no check-in", nil)
	case errors.Is(err, attendance.ErrInvalidAttendanceData):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveRequest):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrSalaryStructureNameExists):
		Conflict(w, "Salary structure name already exists")
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrPayrollEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrPayrollRunAlreadyExists):
		Conflict(w, "Payroll run already exists for this period")
	case errors.Is(err, payroll.ErrPayrollRunProcessed):
		Conflict(w, "Payroll run has been processed and is immutable")
	case errors.Is(err, payroll.ErrPayrollRunNotDraft),
		errors.Is(err, payroll.ErrPayrollRunNotApproved),
		errors.Is(err, payroll.ErrPayrollRunEmpty),
		errors.Is(err, payroll.ErrInvalidPayrollPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
