package container

import (
	"context"
	"log"
	"sync"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// Business services
	adminService      services.InterfaceAdminService
	departmentService services.InterfaceDepartmentService
	positionService   services.InterfacePositionService
	employeeService   services.InterfaceEmployeeService
	attendanceService services.InterfaceAttendanceService
	leaveService      services.InterfaceLeaveService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Probe the Redis connection when one was handed in
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection test failed: %v, caching and token blacklist degrade to the database", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// Business services
	c.adminService = services.NewAdminService(c.db, c.config)
	c.departmentService = services.NewDepartmentService(c.db, c.config)
	c.positionService = services.NewPositionService(c.db, c.config, c.redisService)
	c.employeeService = services.NewEmployeeService(c.db, c.config)
	c.attendanceService = services.NewAttendanceService(c.db, c.config)
	c.leaveService = services.NewLeaveService(c.db, c.config)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "department":
		return c.departmentService
	case "position":
		return c.positionService
	case "employee":
		return c.employeeService
	case "attendance":
		return c.attendanceService
	case "leave":
		return c.leaveService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
