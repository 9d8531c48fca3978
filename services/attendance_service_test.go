package services

import (
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func attendanceColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "employee_id", "date",
		"check_in", "check_out", "status", "notes",
	}
}

func TestCreateAttendanceUnknownEmployee(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(employeeColumns()))

	err := svc.CreateAttendance(&models.Attendance{
		EmployeeID: 404,
		Date:       time.Now(),
		Status:     models.AttendancePresent,
	})

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttendanceDuplicateDay(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db, &config.Config{})

	day := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(employeeRow(1, "jane.doe@example.com"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `attendances` WHERE employee_id = \\? AND date = \\?").
		WithArgs(1, day).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.CreateAttendance(&models.Attendance{
		EmployeeID: 1,
		Date:       day,
		Status:     models.AttendancePresent,
	})

	assert.ErrorIs(t, err, ErrAttendanceDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAttendanceDuplicateDayExcludesSelf(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db, &config.Config{})

	day := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `attendances` WHERE `attendances`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(attendanceColumns()).
			AddRow(5, now, now, 1, day, "09:00", "17:00", "present", ""))
	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(employeeRow(1, "jane.doe@example.com"))

	// Moving record 5 to a day another record already covers
	other := time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `attendances` WHERE .*id != \\?").
		WithArgs(1, other, 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.UpdateAttendance(5, map[string]interface{}{"date": other})

	assert.ErrorIs(t, err, ErrAttendanceDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAttendanceByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAttendanceService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `attendances` WHERE `attendances`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(attendanceColumns()))

	_, err := svc.GetAttendanceByID(42)
	assert.ErrorIs(t, err, ErrAttendanceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
