package attendance

import "errors"

var (
	ErrInvalidAttendanceData   = errors.New("invalid attendance data")
	ErrAttendanceAlreadyExists = errors.New("attendance record already exists for today")
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrNoCheckInRecord         = errors.New("attendance record has no check-in")
)
