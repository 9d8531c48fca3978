package services

import "errors"

// Sentinel errors returned by the services. Controllers translate these into
// the error-code envelope with errors.Is; anything else is a database error.
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrPositionNotFound   = errors.New("position not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeEmailTaken = errors.New("email is already in use by another employee")

	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrAttendanceDuplicate = errors.New("attendance already recorded for this employee on this date")

	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrLeaveInvalidStatus = errors.New("unknown leave status")

	ErrAdminNotFound      = errors.New("admin not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrAdminEmailTaken    = errors.New("email is already in use by another admin")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
