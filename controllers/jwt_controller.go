package controllers

import (
	"errors"
	"net/http"
	"time"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the auth controller interface
type InterfaceJWTController interface {
	Login()
	Logout()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login form submission
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginData is the payload returned after a successful login
type LoginData struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID    uint   `json:"user_id" example:"1"`
	Username  string `json:"username" example:"admin"`
	Role      string `json:"role" example:"admin"`
	ExpiresAt string `json:"expires_at" example:"2024-03-19T08:00:00Z"`
}

// Login verifies admin credentials and issues a session token
// @Summary      Admin login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login form"
// @Success      200  {object}  response.Response{data=LoginData}
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request parameters")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrPasswordIncorrect, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	claims, err := jwtService.ExtractClaims(token)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "Login successful", LoginData{
		Token:     token,
		UserID:    admin.ID,
		Username:  admin.Username,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time.Format(time.RFC3339),
	})
}

// Logout ends the current session by blacklisting its token until the token
// would have expired anyway. Logging out without a valid session is a no-op.
// @Summary      Admin logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (c *JWTController) Logout() {
	authHeader := c.Ctx.GetHeader("Authorization")
	if authHeader == "" {
		response.SuccessWithMessage(c.Ctx, "Logged out.", nil)
		return
	}

	tokenString := authHeader
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		tokenString = authHeader[7:]
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil || claims.ID == "" {
		response.SuccessWithMessage(c.Ctx, "Logged out.", nil)
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
		if err := redisService.BlacklistToken(claims.ID, ttl); err != nil {
			// The token still dies at its natural expiry
			response.SuccessWithMessage(c.Ctx, "Logged out.", nil)
			return
		}
	}

	response.SuccessWithMessage(c.Ctx, "Logged out.", nil)
}

// HandleJWTFunc returns a Gin handler dispatching auth requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "Invalid method",
				"data":    nil,
			})
		}
	}
}
