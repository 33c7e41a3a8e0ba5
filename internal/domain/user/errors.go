package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrHRAccessRequired    = errors.New("hr access required")
)
