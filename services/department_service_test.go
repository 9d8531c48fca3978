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

func departmentRow(id uint, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "description"}).
		AddRow(id, now, now, name, "")
}

func TestGetDepartmentByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDepartmentService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `departments` WHERE `departments`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := svc.GetDepartmentByID(404)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDepartmentClearsReferences(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDepartmentService(db, &config.Config{})

	mock.ExpectQuery("SELECT \\* FROM `departments` WHERE `departments`\\.`id` = \\?").
		WillReturnRows(departmentRow(2, "Engineering"))

	// Positions and employees are detached, never deleted
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `positions` SET `department_id`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE `employees` SET `department_id`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM `departments` WHERE `departments`\\.`id` = \\?").
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeleteDepartment(2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDepartment(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDepartmentService(db, &config.Config{})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `departments`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	department := &models.Department{Name: "Engineering"}
	require.NoError(t, svc.CreateDepartment(department))
	assert.Equal(t, uint(1), department.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
