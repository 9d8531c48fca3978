package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/models"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfacePositionController defines the position controller interface
type InterfacePositionController interface {
	GetPositions()
	GetPosition()
	CreatePosition()
	UpdatePosition()
	DeletePosition()
	GetPositionOptions()
}

// PositionController handles position related requests
type PositionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPositionController creates a new position controller
func NewPositionController(ctx *gin.Context, container *container.ServiceContainer) *PositionController {
	return &PositionController{
		Ctx:       ctx,
		Container: container,
	}
}

// PositionRequest represents a position form submission
type PositionRequest struct {
	Title        string `json:"title" binding:"required" example:"Backend Engineer"`
	Description  string `json:"description" example:"Builds and operates the platform services"`
	DepartmentID *uint  `json:"department_id" example:"1"`
}

// GetPositions lists all positions
// @Summary      List positions
// @Tags         Position
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /positions [get]
func (c *PositionController) GetPositions() {
	page, pageSize := parsePagination(c.Ctx)

	positionService := c.Container.GetService("position").(services.InterfacePositionService)
	positions, total, err := positionService.GetAllPositions(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, listEnvelope(total, page, pageSize, positions))
}

// GetPosition fetches one position by ID
// @Summary      Get position
// @Tags         Position
// @Produce      json
// @Param        id path int true "Position ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /positions/{id} [get]
func (c *PositionController) GetPosition() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid position ID")
		return
	}

	positionService := c.Container.GetService("position").(services.InterfacePositionService)
	position, err := positionService.GetPositionByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPositionNotFound) {
			response.Fail(c.Ctx, code.ErrPositionNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, position)
}

// CreatePosition creates a new position
// @Summary      Create position
// @Tags         Position
// @Accept       json
// @Produce      json
// @Param        request body PositionRequest true "Position form"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /positions [post]
func (c *PositionController) CreatePosition() {
	var req PositionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	position := &models.Position{
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
	}

	positionService := c.Container.GetService("position").(services.InterfacePositionService)
	if err := positionService.CreatePosition(position); err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			response.Fail(c.Ctx, code.ErrDepartmentNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, "Position created successfully", position)
}

// UpdatePosition updates an existing position
// @Summary      Update position
// @Tags         Position
// @Accept       json
// @Produce      json
// @Param        id path int true "Position ID"
// @Param        request body PositionRequest true "Position form"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /positions/{id} [put]
func (c *PositionController) UpdatePosition() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid position ID")
		return
	}

	var req PositionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	updates := map[string]interface{}{
		"title":         req.Title,
		"description":   req.Description,
		"department_id": req.DepartmentID,
	}

	positionService := c.Container.GetService("position").(services.InterfacePositionService)
	position, err := positionService.UpdatePosition(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrPositionNotFound) {
			response.Fail(c.Ctx, code.ErrPositionNotFound, nil)
			return
		}
		if errors.Is(err, services.ErrDepartmentNotFound) {
			response.Fail(c.Ctx, code.ErrDepartmentNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Position updated successfully", position)
}

// DeletePosition deletes a position. Employees referencing it keep existing
// with the reference cleared.
// @Summary      Delete position
// @Tags         Position
// @Produce      json
// @Param        id path int true "Position ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /positions/{id} [delete]
func (c *PositionController) DeletePosition() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid position ID")
		return
	}

	positionService := c.Container.GetService("position").(services.InterfacePositionService)
	if err := positionService.DeletePosition(id); err != nil {
		if errors.Is(err, services.ErrPositionNotFound) {
			response.Fail(c.Ctx, code.ErrPositionNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Position deleted.", nil)
}

// GetPositionOptions serves the dependent dropdown on the employee form:
// a bare JSON array of {id, title} pairs, optionally filtered by department.
// @Summary      Positions lookup for dependent dropdown
// @Tags         Position
// @Produce      json
// @Param        department_id query int false "Filter positions to one department"
// @Success      200  {array}  models.PositionOption
// @Router       /positions/lookup [get]
func (c *PositionController) GetPositionOptions() {
	var departmentID *uint
	if raw := c.Ctx.Query("department_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid department ID")
			return
		}
		id := uint(parsed)
		departmentID = &id
	}

	positionService := c.Container.GetService("position").(services.InterfacePositionService)
	options, err := positionService.GetPositionOptions(departmentID)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}
	if options == nil {
		options = []models.PositionOption{}
	}

	c.Ctx.JSON(http.StatusOK, options)
}

// HandlePositionFunc returns a Gin handler dispatching position requests
func HandlePositionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPositionController(ctx, container)

		switch method {
		case "getPositions":
			controller.GetPositions()
		case "getPosition":
			controller.GetPosition()
		case "createPosition":
			controller.CreatePosition()
		case "updatePosition":
			controller.UpdatePosition()
		case "deletePosition":
			controller.DeletePosition()
		case "getPositionOptions":
			controller.GetPositionOptions()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
