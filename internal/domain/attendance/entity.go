package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusOnLeave Status = "on-leave"
)

// ValidStatuses lists every status a record may carry.
var ValidStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusOnLeave}

func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Attendance is one employee-day. Date is the business-local calendar day at
// local midnight; CheckIn/CheckOut are UTC instants. At most one record may
// exist per (employee, local day) — enforced by a unique index.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        Status
	WorkHours     float64
	OvertimeHours float64
	Notes         *string
	IsManualEntry bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summary aggregates a set of records: counts per status plus hour totals.
type Summary struct {
	EmployeeID         string
	TotalRecords       int
	PresentDays        int
	AbsentDays         int
	LateDays           int
	HalfDays           int
	OnLeaveDays        int
	TotalWorkHours     float64
	TotalOvertimeHours float64
}
