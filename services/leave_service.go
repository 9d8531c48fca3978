package services

import (
	"errors"
	"hrms-http-service/config"
	"hrms-http-service/models"

	"gorm.io/gorm"
)

// InterfaceLeaveService defines the leave request service interface
type InterfaceLeaveService interface {
	GetAllLeaves(page int, pageSize int) ([]models.LeaveRequest, int64, error)
	GetLeaveByID(id uint) (*models.LeaveRequest, error)
	CreateLeave(leave *models.LeaveRequest) error
	UpdateLeave(id uint, updates map[string]interface{}) (*models.LeaveRequest, error)
	DeleteLeave(id uint) error
	SetLeaveStatus(id uint, status models.LeaveStatus) (*models.LeaveRequest, error)
}

// LeaveService provides leave request related services
type LeaveService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLeaveService creates a new leave request service
func NewLeaveService(db *gorm.DB, cfg *config.Config) InterfaceLeaveService {
	return &LeaveService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllLeaves returns leave requests newest first, with the owning employee
// preloaded for list display.
func (s *LeaveService) GetAllLeaves(page int, pageSize int) ([]models.LeaveRequest, int64, error) {
	var leaves []models.LeaveRequest
	var total int64
	if err := s.DB.Model(&models.LeaveRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Preload("Employee").Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&leaves).Error; err != nil {
		return nil, 0, err
	}
	return leaves, total, nil
}

// GetLeaveByID returns a leave request by ID
func (s *LeaveService) GetLeaveByID(id uint) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest
	if err := s.DB.Preload("Employee").First(&leave, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	return &leave, nil
}

// CreateLeave creates a new leave request
func (s *LeaveService) CreateLeave(leave *models.LeaveRequest) error {
	var employee models.Employee
	if err := s.DB.First(&employee, leave.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	if err := s.DB.Create(leave).Error; err != nil {
		return err
	}
	leave.DaysRequested = leave.DaysCount()
	return nil
}

// UpdateLeave updates an existing leave request in place
func (s *LeaveService) UpdateLeave(id uint, updates map[string]interface{}) (*models.LeaveRequest, error) {
	leave, err := s.GetLeaveByID(id)
	if err != nil {
		return nil, err
	}

	if employeeID, ok := updates["employee_id"].(uint); ok && employeeID != leave.EmployeeID {
		var employee models.Employee
		if err := s.DB.First(&employee, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	if err := s.DB.Model(leave).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetLeaveByID(id)
}

// DeleteLeave deletes a leave request
func (s *LeaveService) DeleteLeave(id uint) error {
	leave, err := s.GetLeaveByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(leave).Error
}

// SetLeaveStatus sets the status of a leave request unconditionally. The
// transition is not guarded against the current status, matching the manual
// approve/reject actions of the admin workflow, and is therefore idempotent.
func (s *LeaveService) SetLeaveStatus(id uint, status models.LeaveStatus) (*models.LeaveRequest, error) {
	if !status.Valid() {
		return nil, ErrLeaveInvalidStatus
	}

	leave, err := s.GetLeaveByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(leave).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetLeaveByID(id)
}
