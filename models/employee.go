package models

import "time"

// Employee represents a person record with employment attributes. Email is
// globally unique; department and position references are cleared when the
// referenced record is deleted.
type Employee struct {
	BaseModel
	FirstName   string     `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(50);not null" json:"last_name"`
	Email       string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"type:varchar(15)" json:"phone"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address"`

	DepartmentID *uint `gorm:"index" json:"department_id"`
	PositionID   *uint `gorm:"index" json:"position_id"`

	DateJoined time.Time `gorm:"type:date;not null" json:"date_joined"`
	Salary     *float64  `gorm:"type:decimal(10,2)" json:"salary,omitempty"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	// Relations
	Department    *Department    `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
	Position      *Position      `gorm:"foreignKey:PositionID;constraint:OnDelete:SET NULL" json:"position,omitempty"`
	Attendances   []Attendance   `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"attendances,omitempty"`
	LeaveRequests []LeaveRequest `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"leave_requests,omitempty"`
}

// FullName returns the display name used in status messages.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
