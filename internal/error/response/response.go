package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-http-service/internal/error/code"
)

// Response defines the unified response envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responds with a 200 envelope
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// SuccessWithMessage responds with a 200 envelope carrying a transient status message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: message,
		Data:    data,
	})
}

// Created responds with a 201 envelope carrying a transient status message
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    code.ErrSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail responds with the HTTP status and message mapped from the error code
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)
	message := code.GetMessage(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// FailWithMessage responds with a custom message for the error code
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ValidationFailed responds with field-level validation errors. The record is
// never mutated when this is returned.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	Fail(c, code.ErrValidation, gin.H{"fields": fields})
}

// ParamError responds with a request binding/parameter error
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrBind, message, nil)
}

// ServerError responds with a generic 500 envelope
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// Unauthorized responds with a 401 envelope
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}
