package services

import (
	"errors"
	"hrms-http-service/config"
	"hrms-http-service/models"
	"hrms-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceAdminService defines the admin account service interface
type InterfaceAdminService interface {
	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByUsername(username string) (*models.Admin, error)
	CreateAdmin(admin *models.Admin) error
	Authenticate(username, password string) (*models.Admin, error)
	CountAdmins() (int64, error)
}

// AdminService provides admin account related services
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// GetAdminByID returns an admin by ID
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByUsername returns an admin by username
func (s *AdminService) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin creates a new admin account. The plaintext password on the
// model is replaced with its bcrypt hash before anything is persisted.
func (s *AdminService) CreateAdmin(admin *models.Admin) error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("username = ?", admin.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	// Email carries its own uniqueness constraint
	if admin.Email != "" {
		if err := s.DB.Model(&models.Admin{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAdminEmailTaken
		}
	}

	hashedPassword, err := utils.HashPassword(admin.Password)
	if err != nil {
		return err
	}
	admin.Password = hashedPassword

	return s.DB.Create(admin).Error
}

// Authenticate verifies a username/password pair and returns the matching
// admin. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	admin, err := s.GetAdminByUsername(username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// CountAdmins returns the number of admin accounts
func (s *AdminService) CountAdmins() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
