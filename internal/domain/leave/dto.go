package leave

import (
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/validator"
)

const maxReasonLength = 500

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LeaveType  string  `json:"leave_type"`
	Reason     *string `json:"reason"`

	ParsedStart time.Time `json:"-"`
	ParsedEnd   time.Time `json:"-"`
}

// Validate checks shape only; calendar rules (past start, span, overlap)
// belong to the service.
func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd {
		r.ParsedStart = start
		r.ParsedEnd = end
	}

	if !IsValidLeaveType(LeaveType(r.LeaveType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, sick, casual, maternity, paternity, bereavement, unpaid, other",
		})
	}

	if r.Reason != nil && len(*r.Reason) > maxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequestRequest struct {
	Reason *string `json:"reason"`
}

type LeaveRequestResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LeaveType  string  `json:"leave_type"`
	Status     string  `json:"status"`
	Days       int     `json:"days"`
	Reason     *string `json:"reason,omitempty"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

type BalanceResponse struct {
	LeaveType      string `json:"leave_type"`
	Year           int    `json:"year"`
	TotalDays      int    `json:"total_days"`
	UsedDays       int    `json:"used_days"`
	RemainingDays  int    `json:"remaining_days"`
	CarriedForward int    `json:"carried_forward"`
}

type SummaryResponse struct {
	EmployeeID     string         `json:"employee_id"`
	Year           int            `json:"year"`
	TotalRequests  int            `json:"total_requests"`
	ApprovedCount  int            `json:"approved_count"`
	RejectedCount  int            `json:"rejected_count"`
	PendingCount   int            `json:"pending_count"`
	TotalDaysTaken int            `json:"total_days_taken"`
	ByType         map[string]int `json:"by_type"`
}
