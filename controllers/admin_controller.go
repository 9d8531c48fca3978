package controllers

import (
	"errors"
	"net/http"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/middleware"
	"hrms-http-service/models"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController defines the admin account controller interface
type InterfaceAdminController interface {
	Register()
	GetCurrentAdmin()
}

// AdminController handles admin account requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest represents an admin registration form submission
type RegisterRequest struct {
	Username        string `json:"username" binding:"required" example:"admin"`
	Email           string `json:"email" binding:"required,email" example:"admin@example.com"`
	FirstName       string `json:"first_name" example:"Ada"`
	LastName        string `json:"last_name" example:"Lovelace"`
	Phone           string `json:"phone" example:"5551234567"`
	Password        string `json:"password" binding:"required" example:"s3cret-pass"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"s3cret-pass"`
}

// Validate applies the password rules before anything is persisted. It
// returns a field-to-message map, or nil when the submission is valid.
func (r *RegisterRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if len(r.Password) < 8 {
		fields["password"] = "Password must be at least 8 characters long."
	}
	if r.Password != r.ConfirmPassword {
		fields["confirm_password"] = "Passwords do not match."
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Register creates a new admin account. Callers that already hold a valid
// session are redirected to the employee list instead.
// @Summary      Register admin account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration form"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (c *AdminController) Register() {
	if middleware.IsAuthenticated(c.Ctx) {
		c.Ctx.Redirect(http.StatusSeeOther, "/api/employees")
		return
	}

	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}
	if fields := req.Validate(); fields != nil {
		response.ValidationFailed(c.Ctx, fields)
		return
	}

	admin := &models.Admin{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Password:  req.Password, // hashed by the admin service before persisting
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
			return
		}
		if errors.Is(err, services.ErrAdminEmailTaken) {
			response.Fail(c.Ctx, code.ErrAdminEmailExists, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, "Admin account created successfully! Please log in.", admin)
}

// GetCurrentAdmin returns the profile of the authenticated admin
// @Summary      Current admin profile
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/me [get]
func (c *AdminController) GetCurrentAdmin() {
	userID, exists := c.Ctx.Get("userID")
	if !exists {
		response.Unauthorized(c.Ctx)
		return
	}
	id, ok := userID.(uint)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// HandleAdminFunc returns a Gin handler dispatching admin account requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "getCurrentAdmin":
			controller.GetCurrentAdmin()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
