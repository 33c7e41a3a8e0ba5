package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual      LeaveType = "annual"
	LeaveTypeSick        LeaveType = "sick"
	LeaveTypeCasual      LeaveType = "casual"
	LeaveTypeMaternity   LeaveType = "maternity"
	LeaveTypePaternity   LeaveType = "paternity"
	LeaveTypeBereavement LeaveType = "bereavement"
	LeaveTypeUnpaid      LeaveType = "unpaid"
	LeaveTypeOther       LeaveType = "other"
)

// AllLeaveTypes is the canonical ordering used in summaries and balances.
var AllLeaveTypes = []LeaveType{
	LeaveTypeAnnual,
	LeaveTypeSick,
	LeaveTypeCasual,
	LeaveTypeMaternity,
	LeaveTypePaternity,
	LeaveTypeBereavement,
	LeaveTypeUnpaid,
	LeaveTypeOther,
}

// AnnualAllotments is the yearly starting balance per type, in days.
var AnnualAllotments = map[LeaveType]int{
	LeaveTypeAnnual:      20,
	LeaveTypeSick:        10,
	LeaveTypeCasual:      5,
	LeaveTypeMaternity:   180,
	LeaveTypePaternity:   15,
	LeaveTypeBereavement: 5,
	LeaveTypeUnpaid:      365,
	LeaveTypeOther:       0,
}

// CarryForwardCaps bounds how much unused balance rolls into the new year.
var CarryForwardCaps = map[LeaveType]int{
	LeaveTypeAnnual: 10,
	LeaveTypeSick:   5,
	LeaveTypeCasual: 2,
}

func IsValidLeaveType(t LeaveType) bool {
	_, ok := AnnualAllotments[t]
	return ok
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// LeaveRequest covers the inclusive [StartDate, EndDate] range of
// business-local calendar days.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  LeaveType
	Status     Status
	Reason     *string
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Balance is the per-employee, per-type, per-year day counter.
type Balance struct {
	ID             string
	EmployeeID     string
	LeaveType      LeaveType
	Year           int
	TotalDays      int
	UsedDays       int
	RemainingDays  int
	CarriedForward int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Summary is the per-employee, per-year rollup over leave requests.
type Summary struct {
	EmployeeID     string
	Year           int
	TotalRequests  int
	ApprovedCount  int
	RejectedCount  int
	PendingCount   int
	TotalDaysTaken int
	ByType         map[LeaveType]int
}
