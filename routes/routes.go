package routes

import (
	"net/http"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/controllers"
	_ "hrms-http-service/docs"
	"hrms-http-service/middleware"
	"hrms-http-service/services"
	"hrms-http-service/services/container"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	// Initialize the auth middleware
	redisService := serviceContainer.GetService("redis").(services.InterfaceRedisService)
	middleware.InitAuthMiddleware(cfg, redisService)
	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// Service landing route
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "hrms-http-service",
			"status":  "ok",
			"docs":    "/swagger/index.html",
		})
	})

	// API route root
	api := r.Group("/api")
	// Public routes
	registerPublicRoutes(api, container)
	// Routes requiring authentication
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no session
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	// Service info, same payload as the engine root
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "hrms-http-service",
			"status":  "ok",
			"docs":    "/swagger/index.html",
		})
	})

	// Auth routes; login is throttled per client IP
	api.POST("/auth/login", middleware.RateLimitByIP(1, 5), controllers.HandleJWTFunc(container, "login"))
	api.POST("/auth/logout", controllers.HandleJWTFunc(container, "logout"))
	api.POST("/auth/register", controllers.HandleAdminFunc(container, "register"))

	// Dependent dropdown data for the employee form, reachable before login
	api.GET("/positions/lookup", middleware.RateLimitByIP(5, 20), controllers.HandlePositionFunc(container, "getPositionOptions"))
}

// registerAuthenticatedRoutes registers routes behind the admin session
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// Current admin profile
	auth.Group("/auth").GET("/me", controllers.HandleAdminFunc(container, "getCurrentAdmin"))

	// Department routes
	auth.Group("/departments").GET("", controllers.HandleDepartmentFunc(container, "getDepartments"))
	auth.Group("/departments").GET("/:id", controllers.HandleDepartmentFunc(container, "getDepartment"))
	auth.Group("/departments").POST("", controllers.HandleDepartmentFunc(container, "createDepartment"))
	auth.Group("/departments").PUT("/:id", controllers.HandleDepartmentFunc(container, "updateDepartment"))
	auth.Group("/departments").DELETE("/:id", controllers.HandleDepartmentFunc(container, "deleteDepartment"))

	// Position routes
	auth.Group("/positions").GET("", controllers.HandlePositionFunc(container, "getPositions"))
	auth.Group("/positions").GET("/:id", controllers.HandlePositionFunc(container, "getPosition"))
	auth.Group("/positions").POST("", controllers.HandlePositionFunc(container, "createPosition"))
	auth.Group("/positions").PUT("/:id", controllers.HandlePositionFunc(container, "updatePosition"))
	auth.Group("/positions").DELETE("/:id", controllers.HandlePositionFunc(container, "deletePosition"))

	// Employee routes
	auth.Group("/employees").GET("", controllers.HandleEmployeeFunc(container, "getEmployees"))
	auth.Group("/employees").GET("/:id", controllers.HandleEmployeeFunc(container, "getEmployee"))
	auth.Group("/employees").POST("", controllers.HandleEmployeeFunc(container, "createEmployee"))
	auth.Group("/employees").PUT("/:id", controllers.HandleEmployeeFunc(container, "updateEmployee"))
	auth.Group("/employees").DELETE("/:id", controllers.HandleEmployeeFunc(container, "deleteEmployee"))

	// Attendance routes
	auth.Group("/attendance").GET("", controllers.HandleAttendanceFunc(container, "getAttendances"))
	auth.Group("/attendance").GET("/:id", controllers.HandleAttendanceFunc(container, "getAttendance"))
	auth.Group("/attendance").POST("", controllers.HandleAttendanceFunc(container, "createAttendance"))
	auth.Group("/attendance").PUT("/:id", controllers.HandleAttendanceFunc(container, "updateAttendance"))
	auth.Group("/attendance").DELETE("/:id", controllers.HandleAttendanceFunc(container, "deleteAttendance"))

	// Leave request routes
	auth.Group("/leaves").GET("", controllers.HandleLeaveFunc(container, "getLeaves"))
	auth.Group("/leaves").GET("/:id", controllers.HandleLeaveFunc(container, "getLeave"))
	auth.Group("/leaves").POST("", controllers.HandleLeaveFunc(container, "createLeave"))
	auth.Group("/leaves").PUT("/:id", controllers.HandleLeaveFunc(container, "updateLeave"))
	auth.Group("/leaves").DELETE("/:id", controllers.HandleLeaveFunc(container, "deleteLeave"))
	auth.Group("/leaves").POST("/:id/approve", controllers.HandleLeaveFunc(container, "approveLeave"))
	auth.Group("/leaves").POST("/:id/reject", controllers.HandleLeaveFunc(container, "rejectLeave"))
}
