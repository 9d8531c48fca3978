package controllers

import (
	"errors"
	"net/http"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/models"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceDepartmentController defines the department controller interface
type InterfaceDepartmentController interface {
	GetDepartments()
	GetDepartment()
	CreateDepartment()
	UpdateDepartment()
	DeleteDepartment()
}

// DepartmentController handles department related requests
type DepartmentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(ctx *gin.Context, container *container.ServiceContainer) *DepartmentController {
	return &DepartmentController{
		Ctx:       ctx,
		Container: container,
	}
}

// DepartmentRequest represents a department form submission
type DepartmentRequest struct {
	Name        string `json:"name" binding:"required" example:"Engineering"`
	Description string `json:"description" example:"Product development and platform teams"`
}

// GetDepartments lists all departments
// @Summary      List departments
// @Tags         Department
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /departments [get]
func (c *DepartmentController) GetDepartments() {
	page, pageSize := parsePagination(c.Ctx)

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	departments, total, err := departmentService.GetAllDepartments(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, listEnvelope(total, page, pageSize, departments))
}

// GetDepartment fetches one department by ID
// @Summary      Get department
// @Tags         Department
// @Produce      json
// @Param        id path int true "Department ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [get]
func (c *DepartmentController) GetDepartment() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid department ID")
		return
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	department, err := departmentService.GetDepartmentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			response.Fail(c.Ctx, code.ErrDepartmentNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, department)
}

// CreateDepartment creates a new department
// @Summary      Create department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        request body DepartmentRequest true "Department form"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /departments [post]
func (c *DepartmentController) CreateDepartment() {
	var req DepartmentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	if err := departmentService.CreateDepartment(department); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, "Department created successfully", department)
}

// UpdateDepartment updates an existing department
// @Summary      Update department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID"
// @Param        request body DepartmentRequest true "Department form"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid department ID")
		return
	}

	var req DepartmentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	department, err := departmentService.UpdateDepartment(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			response.Fail(c.Ctx, code.ErrDepartmentNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Department updated successfully", department)
}

// DeleteDepartment deletes a department. Positions and employees that
// reference it keep existing with the reference cleared.
// @Summary      Delete department
// @Tags         Department
// @Produce      json
// @Param        id path int true "Department ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid department ID")
		return
	}

	departmentService := c.Container.GetService("department").(services.InterfaceDepartmentService)
	if err := departmentService.DeleteDepartment(id); err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			response.Fail(c.Ctx, code.ErrDepartmentNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Department deleted.", nil)
}

// HandleDepartmentFunc returns a Gin handler dispatching department requests
func HandleDepartmentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDepartmentController(ctx, container)

		switch method {
		case "getDepartments":
			controller.GetDepartments()
		case "getDepartment":
			controller.GetDepartment()
		case "createDepartment":
			controller.CreateDepartment()
		case "updateDepartment":
			controller.UpdateDepartment()
		case "deleteDepartment":
			controller.DeleteDepartment()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
