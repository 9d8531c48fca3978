package services

import (
	"errors"
	"fmt"
	"hrms-http-service/config"
	"hrms-http-service/models"
	"time"

	"gorm.io/gorm"
)

const positionOptionsCacheTTL = 5 * time.Minute

// InterfacePositionService defines the position service interface
type InterfacePositionService interface {
	GetAllPositions(page int, pageSize int) ([]models.Position, int64, error)
	GetPositionByID(id uint) (*models.Position, error)
	CreatePosition(position *models.Position) error
	UpdatePosition(id uint, updates map[string]interface{}) (*models.Position, error)
	DeletePosition(id uint) error
	GetPositionOptions(departmentID *uint) ([]models.PositionOption, error)
}

// PositionService provides position related services
type PositionService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
}

// NewPositionService creates a new position service. The Redis service is
// optional and only backs the dropdown option cache.
func NewPositionService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfacePositionService {
	return &PositionService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetAllPositions returns all positions with pagination
func (s *PositionService) GetAllPositions(page int, pageSize int) ([]models.Position, int64, error) {
	var positions []models.Position
	var total int64
	if err := s.DB.Model(&models.Position{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Preload("Department").Offset((page - 1) * pageSize).Limit(pageSize).Find(&positions).Error; err != nil {
		return nil, 0, err
	}
	return positions, total, nil
}

// GetPositionByID returns a position by ID
func (s *PositionService) GetPositionByID(id uint) (*models.Position, error) {
	var position models.Position
	if err := s.DB.Preload("Department").First(&position, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	return &position, nil
}

// CreatePosition creates a new position
func (s *PositionService) CreatePosition(position *models.Position) error {
	if position.DepartmentID != nil {
		var department models.Department
		if err := s.DB.First(&department, *position.DepartmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}
	}

	if err := s.DB.Create(position).Error; err != nil {
		return err
	}
	s.invalidateOptionCache()
	return nil
}

// UpdatePosition updates an existing position in place
func (s *PositionService) UpdatePosition(id uint, updates map[string]interface{}) (*models.Position, error) {
	position, err := s.GetPositionByID(id)
	if err != nil {
		return nil, err
	}

	if departmentID, ok := updates["department_id"].(*uint); ok && departmentID != nil {
		var department models.Department
		if err := s.DB.First(&department, *departmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
	}

	if err := s.DB.Model(position).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.invalidateOptionCache()

	return s.GetPositionByID(id)
}

// DeletePosition deletes a position. Employee references are cleared rather
// than cascaded.
func (s *PositionService) DeletePosition(id uint) error {
	position, err := s.GetPositionByID(id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Employee{}).Where("position_id = ?", id).Update("position_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(position).Error
	})
	if err != nil {
		return err
	}
	s.invalidateOptionCache()
	return nil
}

// GetPositionOptions returns the {id, title} pairs feeding the dependent
// dropdown, filtered to one department when departmentID is set. Results are
// cached in Redis; a cache miss or unavailable Redis falls through to the
// database.
func (s *PositionService) GetPositionOptions(departmentID *uint) ([]models.PositionOption, error) {
	cacheKey := "positions:options:all"
	if departmentID != nil {
		cacheKey = fmt.Sprintf("positions:options:dept:%d", *departmentID)
	}

	if s.Redis != nil {
		var cached []models.PositionOption
		if err := s.Redis.Get(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	query := s.DB.Model(&models.Position{}).Select("id", "title")
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var options []models.PositionOption
	if err := query.Find(&options).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		// Cache errors only cost the next request a DB round trip
		_ = s.Redis.Set(cacheKey, options, positionOptionsCacheTTL)
	}
	return options, nil
}

func (s *PositionService) invalidateOptionCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.DeletePattern("positions:options:*"); err != nil {
		// Stale entries expire on their own TTL
		return
	}
}
