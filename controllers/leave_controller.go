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

// InterfaceLeaveController defines the leave request controller interface
type InterfaceLeaveController interface {
	GetLeaves()
	GetLeave()
	CreateLeave()
	UpdateLeave()
	DeleteLeave()
	ApproveLeave()
	RejectLeave()
}

// LeaveController handles leave request related requests
type LeaveController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLeaveController creates a new leave request controller
func NewLeaveController(ctx *gin.Context, container *container.ServiceContainer) *LeaveController {
	return &LeaveController{
		Ctx:       ctx,
		Container: container,
	}
}

// LeaveRequestInput represents a leave request form submission
type LeaveRequestInput struct {
	EmployeeID uint   `json:"employee_id" binding:"required" example:"1"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=annual sick maternity paternity unpaid" example:"annual"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02" example:"2024-07-01"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02" example:"2024-07-05"`
	Reason     string `json:"reason" binding:"required" example:"Family vacation"`
}

// Validate applies the cross-field rules binding tags cannot express: the
// end date must not precede the start date. It returns a field-to-message
// map, or nil when the submission is valid.
func (r *LeaveRequestInput) Validate() map[string]string {
	start, errStart := time.Parse(models.DateFormat, r.StartDate)
	end, errEnd := time.Parse(models.DateFormat, r.EndDate)
	if errStart != nil || errEnd != nil {
		// Binding already rejected malformed dates
		return nil
	}

	if end.Before(start) {
		return map[string]string{"end_date": "End date must be after start date."}
	}
	return nil
}

// toValues converts a validated submission into column values
func (r *LeaveRequestInput) toValues() (map[string]interface{}, error) {
	start, err := time.Parse(models.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(models.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"employee_id": r.EmployeeID,
		"leave_type":  models.LeaveType(r.LeaveType),
		"start_date":  start,
		"end_date":    end,
		"reason":      r.Reason,
	}, nil
}

// GetLeaves lists leave requests newest first with the employee preloaded
// @Summary      List leave requests
// @Tags         Leave
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /leaves [get]
func (c *LeaveController) GetLeaves() {
	page, pageSize := parsePagination(c.Ctx)

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	leaves, total, err := leaveService.GetAllLeaves(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, listEnvelope(total, page, pageSize, leaves))
}

// GetLeave fetches one leave request by ID
// @Summary      Get leave request
// @Tags         Leave
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /leaves/{id} [get]
func (c *LeaveController) GetLeave() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid leave request ID")
		return
	}

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	leave, err := leaveService.GetLeaveByID(id)
	if err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			response.Fail(c.Ctx, code.ErrLeaveNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, leave)
}

// CreateLeave submits a new leave request, starting in pending status
// @Summary      Submit leave request
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        request body LeaveRequestInput true "Leave request form"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /leaves [post]
func (c *LeaveController) CreateLeave() {
	var req LeaveRequestInput
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

	leave := &models.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  models.LeaveType(req.LeaveType),
		StartDate:  values["start_date"].(time.Time),
		EndDate:    values["end_date"].(time.Time),
		Reason:     req.Reason,
		Status:     models.LeavePending,
	}

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	if err := leaveService.CreateLeave(leave); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, "Leave request submitted successfully!", leave)
}

// UpdateLeave updates an existing leave request in place
// @Summary      Update leave request
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Param        request body LeaveRequestInput true "Leave request form"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /leaves/{id} [put]
func (c *LeaveController) UpdateLeave() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid leave request ID")
		return
	}

	var req LeaveRequestInput
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

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	leave, err := leaveService.UpdateLeave(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			response.Fail(c.Ctx, code.ErrLeaveNotFound, nil)
			return
		}
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Leave request updated successfully!", leave)
}

// DeleteLeave removes a leave request permanently
// @Summary      Delete leave request
// @Tags         Leave
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /leaves/{id} [delete]
func (c *LeaveController) DeleteLeave() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid leave request ID")
		return
	}

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	if err := leaveService.DeleteLeave(id); err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			response.Fail(c.Ctx, code.ErrLeaveNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Leave request deleted.", nil)
}

// ApproveLeave sets a leave request to approved, regardless of its current
// status.
// @Summary      Approve leave request
// @Tags         Leave
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /leaves/{id}/approve [post]
func (c *LeaveController) ApproveLeave() {
	c.setLeaveStatus(models.LeaveApproved)
}

// RejectLeave sets a leave request to rejected, regardless of its current
// status.
// @Summary      Reject leave request
// @Tags         Leave
// @Produce      json
// @Param        id path int true "Leave request ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /leaves/{id}/reject [post]
func (c *LeaveController) RejectLeave() {
	c.setLeaveStatus(models.LeaveRejected)
}

func (c *LeaveController) setLeaveStatus(status models.LeaveStatus) {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid leave request ID")
		return
	}

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	leave, err := leaveService.SetLeaveStatus(id, status)
	if err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			response.Fail(c.Ctx, code.ErrLeaveNotFound, nil)
			return
		}
		if errors.Is(err, services.ErrLeaveInvalidStatus) {
			response.Fail(c.Ctx, code.ErrLeaveInvalidStatus, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	employeeName := "employee"
	if leave.Employee != nil {
		employeeName = leave.Employee.FullName()
	}
	if status == models.LeaveApproved {
		response.SuccessWithMessage(c.Ctx, "Leave request for "+employeeName+" has been approved.", leave)
		return
	}
	response.SuccessWithMessage(c.Ctx, "Leave request for "+employeeName+" has been rejected.", leave)
}

// HandleLeaveFunc returns a Gin handler dispatching leave requests
func HandleLeaveFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLeaveController(ctx, container)

		switch method {
		case "getLeaves":
			controller.GetLeaves()
		case "getLeave":
			controller.GetLeave()
		case "createLeave":
			controller.CreateLeave()
		case "updateLeave":
			controller.UpdateLeave()
		case "deleteLeave":
			controller.DeleteLeave()
		case "approveLeave":
			controller.ApproveLeave()
		case "rejectLeave":
			controller.RejectLeave()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
