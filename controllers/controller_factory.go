package controllers

import (
	"errors"
	"strconv"

	"hrms-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// BaseController is the interface shared by all controllers
type BaseController interface {
	// GetContainer returns the service container
	GetContainer() *container.ServiceContainer
	// GetContext returns the Gin context
	GetContext() *gin.Context
}

// BaseControllerImpl is the base controller implementation
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer implements the BaseController interface
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext implements the BaseController interface
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// errInvalidID reports an unparseable :id path parameter
var errInvalidID = errors.New("invalid record ID")

// parseIDParam parses the :id path parameter of the current request
func parseIDParam(ctx *gin.Context) (uint, error) {
	id := ctx.Param("id")
	if id == "" {
		return 0, errInvalidID
	}
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(idUint), nil
}

// parsePagination extracts the page/page_size query parameters with the
// defaults and bounds used across all list endpoints.
func parsePagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

// listEnvelope is the pagination envelope wrapped around list responses
func listEnvelope(total int64, page, pageSize int, data interface{}) gin.H {
	return gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        data,
	}
}
