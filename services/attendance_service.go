package services

import (
	"errors"
	"hrms-http-service/config"
	"hrms-http-service/models"
	"time"

	"gorm.io/gorm"
)

// InterfaceAttendanceService defines the attendance service interface
type InterfaceAttendanceService interface {
	GetAllAttendances(page int, pageSize int) ([]models.Attendance, int64, error)
	GetAttendanceByID(id uint) (*models.Attendance, error)
	CreateAttendance(attendance *models.Attendance) error
	UpdateAttendance(id uint, updates map[string]interface{}) (*models.Attendance, error)
	DeleteAttendance(id uint) error
}

// AttendanceService provides attendance related services
type AttendanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(db *gorm.DB, cfg *config.Config) InterfaceAttendanceService {
	return &AttendanceService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllAttendances returns attendance records newest day first, with the
// owning employee preloaded for list display.
func (s *AttendanceService) GetAllAttendances(page int, pageSize int) ([]models.Attendance, int64, error) {
	var attendances []models.Attendance
	var total int64
	if err := s.DB.Model(&models.Attendance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Preload("Employee").Order("date DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&attendances).Error; err != nil {
		return nil, 0, err
	}
	return attendances, total, nil
}

// GetAttendanceByID returns an attendance record by ID
func (s *AttendanceService) GetAttendanceByID(id uint) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := s.DB.Preload("Employee").First(&attendance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return &attendance, nil
}

// CreateAttendance creates a new attendance record. At most one record may
// exist per employee per day.
func (s *AttendanceService) CreateAttendance(attendance *models.Attendance) error {
	var employee models.Employee
	if err := s.DB.First(&employee, attendance.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	if err := s.checkUniqueDay(attendance.EmployeeID, attendance.Date, 0); err != nil {
		return err
	}

	return s.DB.Create(attendance).Error
}

// UpdateAttendance updates an existing attendance record in place. The
// (employee, date) pair must stay unique across all other records.
func (s *AttendanceService) UpdateAttendance(id uint, updates map[string]interface{}) (*models.Attendance, error) {
	attendance, err := s.GetAttendanceByID(id)
	if err != nil {
		return nil, err
	}

	employeeID := attendance.EmployeeID
	if v, ok := updates["employee_id"].(uint); ok {
		employeeID = v
	}
	date := attendance.Date
	if v, ok := updates["date"].(time.Time); ok {
		date = v
	}

	if employeeID != attendance.EmployeeID {
		var employee models.Employee
		if err := s.DB.First(&employee, employeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	if err := s.checkUniqueDay(employeeID, date, id); err != nil {
		return nil, err
	}

	if err := s.DB.Model(attendance).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAttendanceByID(id)
}

// DeleteAttendance deletes an attendance record
func (s *AttendanceService) DeleteAttendance(id uint) error {
	attendance, err := s.GetAttendanceByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(attendance).Error
}

// checkUniqueDay enforces the one-record-per-employee-per-day constraint,
// excluding the record being updated.
func (s *AttendanceService) checkUniqueDay(employeeID uint, date time.Time, excludeID uint) error {
	var count int64
	query := s.DB.Model(&models.Attendance{}).Where("employee_id = ? AND date = ?", employeeID, date)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAttendanceDuplicate
	}
	return nil
}
