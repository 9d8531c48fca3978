package services

import (
	"errors"
	"hrms-http-service/config"
	"hrms-http-service/models"

	"gorm.io/gorm"
)

// InterfaceDepartmentService defines the department service interface
type InterfaceDepartmentService interface {
	GetAllDepartments(page int, pageSize int) ([]models.Department, int64, error)
	GetDepartmentByID(id uint) (*models.Department, error)
	CreateDepartment(department *models.Department) error
	UpdateDepartment(id uint, updates map[string]interface{}) (*models.Department, error)
	DeleteDepartment(id uint) error
}

// DepartmentService provides department related services
type DepartmentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDepartmentService creates a new department service
func NewDepartmentService(db *gorm.DB, cfg *config.Config) InterfaceDepartmentService {
	return &DepartmentService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllDepartments returns all departments with pagination
func (s *DepartmentService) GetAllDepartments(page int, pageSize int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64
	if err := s.DB.Model(&models.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Offset((page - 1) * pageSize).Limit(pageSize).Find(&departments).Error; err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

// GetDepartmentByID returns a department by ID
func (s *DepartmentService) GetDepartmentByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := s.DB.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return &department, nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(department *models.Department) error {
	return s.DB.Create(department).Error
}

// UpdateDepartment updates an existing department in place
func (s *DepartmentService) UpdateDepartment(id uint, updates map[string]interface{}) (*models.Department, error) {
	department, err := s.GetDepartmentByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(department).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetDepartmentByID(id)
}

// DeleteDepartment deletes a department. References from positions and
// employees are cleared rather than cascaded, so those records survive.
func (s *DepartmentService) DeleteDepartment(id uint) error {
	department, err := s.GetDepartmentByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Position{}).Where("department_id = ?", id).Update("department_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Employee{}).Where("department_id = ?", id).Update("department_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(department).Error
	})
}
