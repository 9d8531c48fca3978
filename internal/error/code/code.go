package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: bad request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: uniqueness conflict.
	StatusConflict = 409
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// General error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Auth error codes (101xxx).
const (
	// ErrAdminNotFound - 404: admin account not found.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 409: admin account already exists.
	ErrAdminAlreadyExist
	// ErrPasswordIncorrect - 401: incorrect username or password.
	ErrPasswordIncorrect
	// ErrRegistrationInvalid - 400: registration form invalid.
	ErrRegistrationInvalid
	// ErrAdminEmailExists - 409: admin email already in use.
	ErrAdminEmailExists
)

// Employee error codes (102xxx).
const (
	// ErrEmployeeNotFound - 404: employee not found.
	ErrEmployeeNotFound int = iota + 102000
	// ErrEmployeeEmailExists - 409: employee email already in use.
	ErrEmployeeEmailExists
)

// Department error codes (103xxx).
const (
	// ErrDepartmentNotFound - 404: department not found.
	ErrDepartmentNotFound int = iota + 103000
)

// Position error codes (104xxx).
const (
	// ErrPositionNotFound - 404: position not found.
	ErrPositionNotFound int = iota + 104000
)

// Attendance error codes (105xxx).
const (
	// ErrAttendanceNotFound - 404: attendance record not found.
	ErrAttendanceNotFound int = iota + 105000
	// ErrAttendanceDuplicate - 409: attendance already recorded for that employee and date.
	ErrAttendanceDuplicate
)

// Leave request error codes (106xxx).
const (
	// ErrLeaveNotFound - 404: leave request not found.
	ErrLeaveNotFound int = iota + 106000
	// ErrLeaveInvalidStatus - 400: unknown leave status.
	ErrLeaveInvalidStatus
)

// Database error codes (109xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 109000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
