package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/models"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceEmployeeController defines the employee controller interface
type InterfaceEmployeeController interface {
	GetEmployees()
	GetEmployee()
	CreateEmployee()
	UpdateEmployee()
	DeleteEmployee()
}

// EmployeeController handles employee related requests
type EmployeeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(ctx *gin.Context, container *container.ServiceContainer) *EmployeeController {
	return &EmployeeController{
		Ctx:       ctx,
		Container: container,
	}
}

// EmployeeRequest represents an employee form submission. Dates travel as
// YYYY-MM-DD strings; salary as a decimal string so the fractional-digit
// limit survives the wire.
type EmployeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required" example:"Jane"`
	LastName     string  `json:"last_name" binding:"required" example:"Doe"`
	Email        string  `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Phone        string  `json:"phone" example:"5551234567"`
	DateOfBirth  string  `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02" example:"1990-04-12"`
	Address      string  `json:"address" example:"12 Main Street, Springfield"`
	DepartmentID *uint   `json:"department_id" example:"1"`
	PositionID   *uint   `json:"position_id" example:"2"`
	DateJoined   string  `json:"date_joined" binding:"required,datetime=2006-01-02" example:"2022-09-01"`
	Salary       *string `json:"salary" example:"85000.00"`
	IsActive     *bool   `json:"is_active" example:"true"`
}

// salaryPattern allows up to 10 digits total with at most 2 of them
// fractional, and no sign.
var salaryPattern = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

// Validate applies the cross-field rules binding tags cannot express. It
// returns a field-to-message map, or nil when the submission is valid.
func (r *EmployeeRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if r.Salary != nil && *r.Salary != "" && !salaryPattern.MatchString(*r.Salary) {
		fields["salary"] = "Salary must be a non-negative amount with at most 2 decimal places."
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// toValues converts a validated submission into the column values applied to
// the model. Binding has already guaranteed the date and salary formats.
func (r *EmployeeRequest) toValues() (map[string]interface{}, error) {
	dateJoined, err := time.Parse(models.DateFormat, r.DateJoined)
	if err != nil {
		return nil, err
	}

	var dateOfBirth *time.Time
	if r.DateOfBirth != "" {
		parsed, err := time.Parse(models.DateFormat, r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		dateOfBirth = &parsed
	}

	var salary *float64
	if r.Salary != nil && *r.Salary != "" {
		parsed, err := strconv.ParseFloat(*r.Salary, 64)
		if err != nil {
			return nil, err
		}
		salary = &parsed
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return map[string]interface{}{
		"first_name":    r.FirstName,
		"last_name":     r.LastName,
		"email":         r.Email,
		"phone":         r.Phone,
		"date_of_birth": dateOfBirth,
		"address":       r.Address,
		"department_id": r.DepartmentID,
		"position_id":   r.PositionID,
		"date_joined":   dateJoined,
		"salary":        salary,
		"is_active":     isActive,
	}, nil
}

// toModel converts a validated submission into a new employee record
func (r *EmployeeRequest) toModel() (*models.Employee, error) {
	values, err := r.toValues()
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Address:      r.Address,
		DepartmentID: r.DepartmentID,
		PositionID:   r.PositionID,
		DateJoined:   values["date_joined"].(time.Time),
		IsActive:     values["is_active"].(bool),
	}
	if dob, ok := values["date_of_birth"].(*time.Time); ok {
		employee.DateOfBirth = dob
	}
	if salary, ok := values["salary"].(*float64); ok {
		employee.Salary = salary
	}
	return employee, nil
}

// GetEmployees lists all employees with department and position preloaded
// @Summary      List employees
// @Tags         Employee
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /employees [get]
func (c *EmployeeController) GetEmployees() {
	page, pageSize := parsePagination(c.Ctx)

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employees, total, err := employeeService.GetAllEmployees(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, listEnvelope(total, page, pageSize, employees))
}

// GetEmployee fetches one employee by ID. This also backs the delete
// confirmation step: the client shows the record before the explicit DELETE.
// @Summary      Get employee
// @Tags         Employee
// @Produce      json
// @Param        id path int true "Employee ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
func (c *EmployeeController) GetEmployee() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employee, err := employeeService.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, employee)
}

// CreateEmployee creates a new employee
// @Summary      Create employee
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        request body EmployeeRequest true "Employee form"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /employees [post]
func (c *EmployeeController) CreateEmployee() {
	var req EmployeeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}
	if fields := req.Validate(); fields != nil {
		response.ValidationFailed(c.Ctx, fields)
		return
	}

	employee, err := req.toModel()
	if err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	if err := employeeService.CreateEmployee(employee); err != nil {
		c.failEmployeeWrite(err)
		return
	}

	response.Created(c.Ctx, "Employee created successfully", employee)
}

// UpdateEmployee updates an existing employee in place
// @Summary      Update employee
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID"
// @Param        request body EmployeeRequest true "Employee form"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	var req EmployeeRequest
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

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	employee, err := employeeService.UpdateEmployee(id, updates)
	if err != nil {
		c.failEmployeeWrite(err)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Employee updated successfully", employee)
}

// DeleteEmployee removes an employee permanently, together with all of its
// attendance records and leave requests.
// @Summary      Delete employee
// @Tags         Employee
// @Produce      json
// @Param        id path int true "Employee ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid employee ID")
		return
	}

	employeeService := c.Container.GetService("employee").(services.InterfaceEmployeeService)
	if err := employeeService.DeleteEmployee(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Employee deleted.", nil)
}

// failEmployeeWrite maps employee write errors onto the response envelope
func (c *EmployeeController) failEmployeeWrite(err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		response.Fail(c.Ctx, code.ErrEmployeeNotFound, nil)
	case errors.Is(err, services.ErrEmployeeEmailTaken):
		response.Fail(c.Ctx, code.ErrEmployeeEmailExists, gin.H{"fields": gin.H{"email": "An employee with this email already exists."}})
	case errors.Is(err, services.ErrDepartmentNotFound):
		response.Fail(c.Ctx, code.ErrDepartmentNotFound, nil)
	case errors.Is(err, services.ErrPositionNotFound):
		response.Fail(c.Ctx, code.ErrPositionNotFound, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

// HandleEmployeeFunc returns a Gin handler dispatching employee requests
func HandleEmployeeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmployeeController(ctx, container)

		switch method {
		case "getEmployees":
			controller.GetEmployees()
		case "getEmployee":
			controller.GetEmployee()
		case "createEmployee":
			controller.CreateEmployee()
		case "updateEmployee":
			controller.UpdateEmployee()
		case "deleteEmployee":
			controller.DeleteEmployee()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
