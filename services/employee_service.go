package services

import (
	"errors"
	"hrms-http-service/config"
	"hrms-http-service/models"

	"gorm.io/gorm"
)

// InterfaceEmployeeService defines the employee service interface
type InterfaceEmployeeService interface {
	GetAllEmployees(page int, pageSize int) ([]models.Employee, int64, error)
	GetEmployeeByID(id uint) (*models.Employee, error)
	CreateEmployee(employee *models.Employee) error
	UpdateEmployee(id uint, updates map[string]interface{}) (*models.Employee, error)
	DeleteEmployee(id uint) error
}

// EmployeeService provides employee related services
type EmployeeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *gorm.DB, cfg *config.Config) InterfaceEmployeeService {
	return &EmployeeService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllEmployees returns all employees with pagination
func (s *EmployeeService) GetAllEmployees(page int, pageSize int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64
	if err := s.DB.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Preload("Department").Preload("Position").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&employees).Error; err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// GetEmployeeByID returns an employee by ID
func (s *EmployeeService) GetEmployeeByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Preload("Department").Preload("Position").First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee creates a new employee. The email must not already be in use.
func (s *EmployeeService) CreateEmployee(employee *models.Employee) error {
	var count int64
	if err := s.DB.Model(&models.Employee{}).Where("email = ?", employee.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmployeeEmailTaken
	}

	if err := s.checkReferences(employee.DepartmentID, employee.PositionID); err != nil {
		return err
	}

	return s.DB.Create(employee).Error
}

// UpdateEmployee updates an existing employee in place. The email must not
// collide with any other employee.
func (s *EmployeeService) UpdateEmployee(id uint, updates map[string]interface{}) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	if email, ok := updates["email"].(string); ok && email != employee.Email {
		var count int64
		if err := s.DB.Model(&models.Employee{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmployeeEmailTaken
		}
	}

	departmentID, _ := updates["department_id"].(*uint)
	positionID, _ := updates["position_id"].(*uint)
	if err := s.checkReferences(departmentID, positionID); err != nil {
		return nil, err
	}

	if err := s.DB.Model(employee).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEmployeeByID(id)
}

// DeleteEmployee deletes an employee together with all of its attendance
// records and leave requests.
func (s *EmployeeService) DeleteEmployee(id uint) error {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.LeaveRequest{}).Error; err != nil {
			return err
		}
		return tx.Delete(employee).Error
	})
}

// checkReferences verifies that referenced department and position exist
func (s *EmployeeService) checkReferences(departmentID, positionID *uint) error {
	if departmentID != nil {
		var department models.Department
		if err := s.DB.First(&department, *departmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}
	}
	if positionID != nil {
		var position models.Position
		if err := s.DB.First(&position, *positionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPositionNotFound
			}
			return err
		}
	}
	return nil
}
