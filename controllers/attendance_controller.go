package controllers

import (
	"errors"
	"net/http"
	"time"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/models"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAttendanceController defines the attendance controller interface
type InterfaceAttendanceController interface {
	GetAttendances()
	GetAttendance()
	CreateAttendance()
	UpdateAttendance()
	DeleteAttendance()
}

// AttendanceController handles attendance related requests
type AttendanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(ctx *gin.Context, container *container.ServiceContainer) *AttendanceController {
	return &AttendanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// AttendanceRequest represents an attendance form submission. Check-in and
// check-out are HH:MM times of day.
type AttendanceRequest struct {
	EmployeeID uint    `json:"employee_id" binding:"required" example:"1"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-18"`
	CheckIn    *string `json:"check_in" binding:"omitempty,datetime=15:04" example:"09:05"`
	CheckOut   *string `json:"check_out" binding:"omitempty,datetime=15:04" example:"17:30"`
	Status     string  `json:"status" binding:"omitempty,oneof=present absent late half_day" example:"present"`
	Notes      string  `json:"notes" example:"Arrived late due to traffic"`
}

// status returns the submitted status, defaulting to present
func (r *AttendanceRequest) status() models.AttendanceStatus {
	if r.Status == "" {
		return models.AttendancePresent
	}
	return models.AttendanceStatus(r.Status)
}

// Validate applies the cross-field rules binding tags cannot express: unless
// the status is absent, both check-in and check-out must be supplied. It
// returns a field-to-message map, or nil when the submission is valid.
func (r *AttendanceRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if r.status() != models.AttendanceAbsent {
		if r.CheckIn == nil || *r.CheckIn == "" {
			fields["check_in"] = "Check-in time is required for this status."
		}
		if r.CheckOut == nil || *r.CheckOut == "" {
			fields["check_out"] = "Check-out time is required for this status."
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// toValues converts a validated submission into column values. Binding has
// already guaranteed the date format.
func (r *AttendanceRequest) toValues() (map[string]interface{}, error) {
	date, err := time.Parse(models.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"employee_id": r.EmployeeID,
		"date":        date,
		"check_in":    r.CheckIn,
		"check_out":   r.CheckOut,
		"status":      r.status(),
		"notes":       r.Notes,
	}, nil
}

// GetAttendances lists attendance records newest day first with the employee
// preloaded for display.
// @Summary      List attendance records
// @Tags         Attendance
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /attendance [get]
func (c *AttendanceController) GetAttendances() {
	page, pageSize := parsePagination(c.Ctx)

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	attendances, total, err := attendanceService.GetAllAttendances(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, listEnvelope(total, page, pageSize, attendances))
}

// GetAttendance fetches one attendance record by ID
// @Summary      Get attendance record
// @Tags         Attendance
// @Produce      json
// @Param        id path int true "Attendance ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /attendance/{id} [get]
func (c *AttendanceController) GetAttendance() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid attendance ID")
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	attendance, err := attendanceService.GetAttendanceByID(id)
	if err != nil {
		if errors.Is(err, services.ErrAttendanceNotFound) {
			response.Fail(c.Ctx, code.ErrAttendanceNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, attendance)
}

// CreateAttendance creates a new attendance record. At most one record may
// exist per employee per day.
// @Summary      Create attendance record
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        request body AttendanceRequest true "Attendance form"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /attendance [post]
func (c *AttendanceController) CreateAttendance() {
	var req AttendanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}
	if fields := req.Validate(); fields != nil {
		response.ValidationFailed(c.Ctx, fields)
		return
	}

	values, err := req.toValues()
	if err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	attendance := &models.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       values["date"].(time.Time),
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.status(),
		Notes:      req.Notes,
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	if err := attendanceService.CreateAttendance(attendance); err != nil {
		c.failAttendanceWrite(err)
		return
	}

	response.Created(c.Ctx, "Attendance record added successfully!", attendance)
}

// UpdateAttendance updates an existing attendance record in place
// @Summary      Update attendance record
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        id path int true "Attendance ID"
// @Param        request body AttendanceRequest true "Attendance form"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid attendance ID")
		return
	}

	var req AttendanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}
	if fields := req.Validate(); fields != nil {
		response.ValidationFailed(c.Ctx, fields)
		return
	}

	updates, err := req.toValues()
	if err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	attendance, err := attendanceService.UpdateAttendance(id, updates)
	if err != nil {
		c.failAttendanceWrite(err)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Attendance record updated successfully!", attendance)
}

// DeleteAttendance removes an attendance record permanently
// @Summary      Delete attendance record
// @Tags         Attendance
// @Produce      json
// @Param        id path int true "Attendance ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid attendance ID")
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)
	if err := attendanceService.DeleteAttendance(id); err != nil {
		if errors.Is(err, services.ErrAttendanceNotFound) {
			response.Fail(c.Ctx, code.ErrAttendanceNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Attendance record deleted.", nil)
}

// failAttendanceWrite maps attendance write errors onto the response envelope
func (c *AttendanceController) failAttendanceWrite(err error) {
	switch {
	case errors.Is(err, services.ErrAttendanceNotFound):
		response.Fail(c.Ctx, code.ErrAttendanceNotFound, nil)
	case errors.Is(err, services.ErrAttendanceDuplicate):
		response.Fail(c.Ctx, code.ErrAttendanceDuplicate, nil)
	case errors.Is(err, services.ErrEmployeeNotFound):
		response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

// HandleAttendanceFunc returns a Gin handler dispatching attendance requests
func HandleAttendanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAttendanceController(ctx, container)

		switch method {
		case "getAttendances":
			controller.GetAttendances()
		case "getAttendance":
			controller.GetAttendance()
		case "createAttendance":
			controller.CreateAttendance()
		case "updateAttendance":
			controller.UpdateAttendance()
		case "deleteAttendance":
			controller.DeleteAttendance()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
