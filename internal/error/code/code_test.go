package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStatus(t *testing.T) {
	assert.Equal(t, StatusOK, GetStatus(ErrSuccess))
	assert.Equal(t, StatusNotFound, GetStatus(ErrEmployeeNotFound))
	assert.Equal(t, StatusConflict, GetStatus(ErrEmployeeEmailExists))
	assert.Equal(t, StatusConflict, GetStatus(ErrAttendanceDuplicate))
	assert.Equal(t, StatusUnauthorized, GetStatus(ErrTokenInvalid))
	assert.Equal(t, StatusTooManyRequests, GetStatus(ErrTooManyRequests))

	// Unmapped codes degrade to a server error
	assert.Equal(t, StatusInternalServerError, GetStatus(999999))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "Success", GetMessage(ErrSuccess))
	assert.Equal(t, "Employee not found", GetMessage(ErrEmployeeNotFound))
	assert.Equal(t, "Unknown error", GetMessage(999999))
}

func TestEveryCodeHasMessageAndStatus(t *testing.T) {
	for c := range codeStatusMap {
		_, ok := codeMessageMap[c]
		assert.True(t, ok, "code %d has a status but no message", c)
	}
	for c := range codeMessageMap {
		_, ok := codeStatusMap[c]
		assert.True(t, ok, "code %d has a message but no status", c)
	}
}
