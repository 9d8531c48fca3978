package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// General error codes
	ErrSuccess:         "Success",
	ErrUnknown:         "Unknown error",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Request validation failed",
	ErrTokenInvalid:    "Invalid authentication token",
	ErrTooManyRequests: "Too many requests, please try again later",

	// Auth error codes
	ErrAdminNotFound:       "Admin account not found",
	ErrAdminAlreadyExist:   "Admin account already exists",
	ErrPasswordIncorrect:   "Invalid username or password",
	ErrRegistrationInvalid: "Registration form is invalid",
	ErrAdminEmailExists:    "An admin with this email already exists",

	// Employee error codes
	ErrEmployeeNotFound:    "Employee not found",
	ErrEmployeeEmailExists: "An employee with this email already exists",

	// Department error codes
	ErrDepartmentNotFound: "Department not found",

	// Position error codes
	ErrPositionNotFound: "Position not found",

	// Attendance error codes
	ErrAttendanceNotFound:  "Attendance record not found",
	ErrAttendanceDuplicate: "Attendance already recorded for this employee on this date",

	// Leave request error codes
	ErrLeaveNotFound:      "Leave request not found",
	ErrLeaveInvalidStatus: "Unknown leave status",

	// Database error codes
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// General error codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Auth error codes
	ErrAdminNotFound:       StatusNotFound,
	ErrAdminAlreadyExist:   StatusConflict,
	ErrPasswordIncorrect:   StatusUnauthorized,
	ErrRegistrationInvalid: StatusBadRequest,
	ErrAdminEmailExists:    StatusConflict,

	// Employee error codes
	ErrEmployeeNotFound:    StatusNotFound,
	ErrEmployeeEmailExists: StatusConflict,

	// Department error codes
	ErrDepartmentNotFound: StatusNotFound,

	// Position error codes
	ErrPositionNotFound: StatusNotFound,

	// Attendance error codes
	ErrAttendanceNotFound:  StatusNotFound,
	ErrAttendanceDuplicate: StatusConflict,

	// Leave request error codes
	ErrLeaveNotFound:      StatusNotFound,
	ErrLeaveInvalidStatus: StatusBadRequest,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
