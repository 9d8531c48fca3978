package services

import (
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaveColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "employee_id", "leave_type",
		"start_date", "end_date", "reason", "status",
	}
}

func leaveRow(id uint, status string) *sqlmock.Rows {
	now := time.Now()
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(leaveColumns()).
		AddRow(id, now, now, 1, "annual", start, end, "Family vacation", status)
}

func TestSetLeaveStatusRejectsUnknownStatus(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewLeaveService(db, &config.Config{})

	_, err := svc.SetLeaveStatus(1, models.LeaveStatus("cancelled"))
	assert.ErrorIs(t, err, ErrLeaveInvalidStatus)
}

func TestSetLeaveStatusApproves(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLeaveService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `leave_requests` WHERE `leave_requests`\\.`id` = \\?").
		WillReturnRows(leaveRow(9, "pending"))
	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(employeeRow(1, "jane.doe@example.com"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `leave_requests` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT \\* FROM `leave_requests` WHERE `leave_requests`\\.`id` = \\?").
		WillReturnRows(leaveRow(9, "approved"))
	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(employeeRow(1, "jane.doe@example.com"))

	leave, err := svc.SetLeaveStatus(9, models.LeaveApproved)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveApproved, leave.Status)
	assert.Equal(t, 3, leave.DaysRequested, "day count is derived on every read")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLeavePopulatesDaysRequested(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLeaveService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(employeeRow(1, "jane.doe@example.com"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `leave_requests`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	leave := &models.LeaveRequest{
		EmployeeID: 1,
		LeaveType:  models.LeaveAnnual,
		StartDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		Reason:     "Family vacation",
		Status:     models.LeavePending,
	}
	require.NoError(t, svc.CreateLeave(leave))
	assert.Equal(t, 5, leave.DaysRequested)
	assert.NoError(t, mock.ExpectationsWereMet())
}
