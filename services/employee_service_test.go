package services

import (
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires a gorm connection over sqlmock for DB-free service tests.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func employeeColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "first_name", "last_name", "email",
		"phone", "date_of_birth", "address", "department_id", "position_id",
		"date_joined", "salary", "is_active",
	}
}

func employeeRow(id uint, email string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(employeeColumns()).
		AddRow(id, now, now, "Jane", "Doe", email,
			"5551234567", nil, "12 Main Street", nil, nil,
			now, nil, true)
}

func TestCreateEmployeeEmailTaken(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEmployeeService(db, &config.Config{})

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `employees` WHERE email = \\?").
		WithArgs("jane.doe@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.CreateEmployee(&models.Employee{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	})

	assert.ErrorIs(t, err, ErrEmployeeEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployeeUnknownDepartment(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEmployeeService(db, &config.Config{})

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `employees` WHERE email = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `departments` WHERE `departments`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	departmentID := uint(99)
	err := svc.CreateEmployee(&models.Employee{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.doe@example.com",
		DepartmentID: &departmentID,
	})

	assert.ErrorIs(t, err, ErrDepartmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEmployeeService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(employeeColumns()))

	_, err := svc.GetEmployeeByID(42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployeeRemovesDependents(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEmployeeService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(employeeRow(3, "jane.doe@example.com"))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `attendances` WHERE employee_id = \\?").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `leave_requests` WHERE employee_id = \\?").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `employees` WHERE `employees`\\.`id` = \\?").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteEmployee(3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewEmployeeService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `employees` WHERE `employees`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(employeeColumns()))

	err := svc.DeleteEmployee(404)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
