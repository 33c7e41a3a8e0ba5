package attendance

import (
	"time"

	"github.com/staffhub-hr/hrms-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  *string `json:"timestamp"`
	Notes      *string `json:"notes"`

	// Parsed by Validate when Timestamp is set.
	ParsedTimestamp *time.Time `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Timestamp != nil {
		t, ok := validator.IsValidDateTime(*r.Timestamp)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		} else {
			utc := t.UTC()
			r.ParsedTimestamp = &utc
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	AttendanceID string  `json:"attendance_id"`
	Timestamp    *string `json:"timestamp"`

	ParsedTimestamp *time.Time `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if r.Timestamp != nil {
		t, ok := validator.IsValidDateTime(*r.Timestamp)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		} else {
			utc := t.UTC()
			r.ParsedTimestamp = &utc
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`

	ParsedDate time.Time `json:"-"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if day, ok := validator.IsValidDate(r.Date); ok {
		r.ParsedDate = day
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && !IsValidStatus(Status(*r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, late, half-day, on-leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	CheckIn       *string `json:"check_in,omitempty"`
	CheckOut      *string `json:"check_out,omitempty"`
	Status        string  `json:"status"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Notes         *string `json:"notes,omitempty"`
	IsManualEntry bool    `json:"is_manual_entry"`
}

type SummaryResponse struct {
	EmployeeID         string  `json:"employee_id"`
	TotalRecords       int     `json:"total_records"`
	PresentDays        int     `json:"present_days"`
	AbsentDays         int     `json:"absent_days"`
	LateDays           int     `json:"late_days"`
	HalfDays           int     `json:"half_days"`
	OnLeaveDays        int     `json:"on_leave_days"`
	TotalWorkHours     float64 `json:"total_work_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
}
