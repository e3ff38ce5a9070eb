package service

import (
	"strings"

	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/repository"
)

// AdminService manages back-office accounts.
type AdminService struct {
	adminRepo   repository.AdminRepository
	authService *AuthService
}

// NewAdminService creates an AdminService.
func NewAdminService(adminRepo repository.AdminRepository, authService *AuthService) *AdminService {
	return &AdminService{adminRepo: adminRepo, authService: authService}
}

// List lists admin accounts without secrets.
func (s *AdminService) List() ([]models.Admin, int64, error) {
	admins, err := s.adminRepo.List()
	if err != nil {
		return nil, 0, err
	}
	total, err := s.adminRepo.Count()
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

// Get returns one admin account.
func (s *AdminService) Get(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// Create creates an admin account.
func (s *AdminService) Create(username, password string, isSuper bool) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidName
	}
	existing, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugExists
	}
	if err := s.authService.ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		IsSuper:      isSuper,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ResetPassword sets a new password and revokes issued tokens.
func (s *AdminService) ResetPassword(id uint, newPassword string) error {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if err := s.authService.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.authService.HashPassword(newPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	admin.TokenVersion++
	return s.adminRepo.Update(admin)
}

// Delete removes an admin account. Super admins cannot be removed.
func (s *AdminService) Delete(id uint) error {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if admin.IsSuper {
		return ErrAdminProtected
	}
	return s.adminRepo.Delete(id)
}
