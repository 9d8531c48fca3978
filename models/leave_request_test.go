package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLeaveRequestDaysCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-01-10", "2024-01-10", 1},
		{"inclusive span", "2024-01-10", "2024-01-12", 3},
		{"across month boundary", "2024-01-30", "2024-02-02", 4},
		{"full week", "2024-07-01", "2024-07-07", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LeaveRequest{StartDate: date(tt.start), EndDate: date(tt.end)}
			assert.Equal(t, tt.want, l.DaysCount())
		})
	}
}

func TestLeaveRequestDaysCountAcrossDSTTransitions(t *testing.T) {
	// Dates scanned with loc=Local land at local midnight, and in a
	// DST-observing zone the spring-forward day is only 23 hours long.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	springForward := &LeaveRequest{
		StartDate: time.Date(2025, 3, 8, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
	}
	assert.Equal(t, 3, springForward.DaysCount())

	fallBack := &LeaveRequest{
		StartDate: time.Date(2025, 10, 31, 0, 0, 0, 0, loc),
		EndDate:   time.Date(2025, 11, 3, 0, 0, 0, 0, loc),
	}
	assert.Equal(t, 4, fallBack.DaysCount())
}

func TestLeaveTypeValid(t *testing.T) {
	for _, lt := range []LeaveType{LeaveAnnual, LeaveSick, LeaveMaternity, LeavePaternity, LeaveUnpaid} {
		assert.True(t, lt.Valid(), "expected %q to be valid", lt)
	}
	assert.False(t, LeaveType("sabbatical").Valid())
	assert.False(t, LeaveType("").Valid())
}

func TestLeaveStatusValid(t *testing.T) {
	for _, st := range []LeaveStatus{LeavePending, LeaveApproved, LeaveRejected} {
		assert.True(t, st.Valid(), "expected %q to be valid", st)
	}
	assert.False(t, LeaveStatus("cancelled").Valid())
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, st := range []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceHalfDay} {
		assert.True(t, st.Valid(), "expected %q to be valid", st)
	}
	assert.False(t, AttendanceStatus("remote").Valid())
}
