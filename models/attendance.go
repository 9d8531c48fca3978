package models

import "time"

// AttendanceStatus enumerates the per-day presence states.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

// Valid reports whether s is one of the known attendance statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay:
		return true
	}
	return false
}

// Attendance is a per-day presence record for one employee. At most one
// record may exist per employee per day; records are removed together with
// the owning employee. Check-in/check-out are HH:MM times of day and are
// required unless the status is absent.
type Attendance struct {
	BaseModel
	EmployeeID uint             `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	CheckIn    *string          `gorm:"type:time" json:"check_in,omitempty"`
	CheckOut   *string          `gorm:"type:time" json:"check_out,omitempty"`
	Status     AttendanceStatus `gorm:"type:varchar(10);default:'present'" json:"status"`
	Notes      string           `gorm:"type:text" json:"notes"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}
