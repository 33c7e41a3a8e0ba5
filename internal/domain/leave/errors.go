package leave

import "errors"

var (
	ErrInvalidLeaveRequest          = errors.New("invalid leave request")
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
)
