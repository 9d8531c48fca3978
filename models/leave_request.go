package models

import (
	"time"

	"gorm.io/gorm"
)

// LeaveType enumerates the kinds of leave an employee can request.
type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeaveMaternity LeaveType = "maternity"
	LeavePaternity LeaveType = "paternity"
	LeaveUnpaid    LeaveType = "unpaid"
)

// Valid reports whether t is one of the known leave types.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeaveMaternity, LeavePaternity, LeaveUnpaid:
		return true
	}
	return false
}

// LeaveStatus enumerates the approval states of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Valid reports whether s is one of the known leave statuses.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	}
	return false
}

// LeaveRequest is a request for time off with an approval workflow. Requests
// are removed together with the owning employee.
type LeaveRequest struct {
	BaseModel
	EmployeeID uint        `gorm:"not null;index" json:"employee_id"`
	LeaveType  LeaveType   `gorm:"type:varchar(10);not null" json:"leave_type"`
	StartDate  time.Time   `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time   `gorm:"type:date;not null" json:"end_date"`
	Reason     string      `gorm:"type:text;not null" json:"reason"`
	Status     LeaveStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`

	// DaysRequested is derived from the date span and never stored.
	DaysRequested int `gorm:"-" json:"days_requested"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

// DaysCount returns the inclusive number of days covered by the request,
// e.g. 2024-01-10 through 2024-01-12 counts as 3. Scanned dates can carry a
// DST-observing location, where not every calendar day is 24 hours, so both
// endpoints are normalized to UTC midnight before subtracting.
func (l *LeaveRequest) DaysCount() int {
	start := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// AfterFind populates the derived day count on every read.
func (l *LeaveRequest) AfterFind(tx *gorm.DB) error {
	l.DaysRequested = l.DaysCount()
	return nil
}
