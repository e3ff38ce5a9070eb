package repository

import (
	"errors"
	"strings"

	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
)

// RegistrationRepository registration data access.
type RegistrationRepository interface {
	Create(registration *models.Registration) error
	GetByID(id uint) (*models.Registration, error)
	GetByRegistrationNo(no string) (*models.Registration, error)
	GetByStripeSessionID(sessionID string) (*models.Registration, error)
	GetByEventAndEmail(eventID uint, email string) (*models.Registration, error)
	List(filter RegistrationListFilter) ([]models.Registration, int64, error)
	Update(registration *models.Registration) error
	WithTx(tx *gorm.DB) *GormRegistrationRepository
}

// GormRegistrationRepository GORM implementation.
type GormRegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates the registration repository.
func NewRegistrationRepository(db *gorm.DB) *GormRegistrationRepository {
	return &GormRegistrationRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormRegistrationRepository) WithTx(tx *gorm.DB) *GormRegistrationRepository {
	if tx == nil {
		return r
	}
	return &GormRegistrationRepository{db: tx}
}

// Create inserts a registration.
func (r *GormRegistrationRepository) Create(registration *models.Registration) error {
	return r.db.Create(registration).Error
}

// GetByID looks up a registration by ID.
func (r *GormRegistrationRepository) GetByID(id uint) (*models.Registration, error) {
	if id == 0 {
		return nil, nil
	}
	var registration models.Registration
	err := r.db.Preload("Category").Preload("Event").Preload("Event.Translations").First(&registration, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// GetByRegistrationNo looks up a registration by its public reference.
func (r *GormRegistrationRepository) GetByRegistrationNo(no string) (*models.Registration, error) {
	no = strings.TrimSpace(no)
	if no == "" {
		return nil, nil
	}
	var registration models.Registration
	err := r.db.Where("registration_no = ?", no).
		Preload("Category").Preload("Event").
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// GetByStripeSessionID looks up a registration by checkout session.
func (r *GormRegistrationRepository) GetByStripeSessionID(sessionID string) (*models.Registration, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, nil
	}
	var registration models.Registration
	err := r.db.Where("stripe_session_id = ?", sessionID).
		Preload("Category").Preload("Event").
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// GetByEventAndEmail returns the most recent registration of (event, email).
func (r *GormRegistrationRepository) GetByEventAndEmail(eventID uint, email string) (*models.Registration, error) {
	if eventID == 0 || email == "" {
		return nil, nil
	}
	var registration models.Registration
	err := r.db.Where("event_id = ? AND email = ?", eventID, email).
		Order("created_at DESC").
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

// List returns registrations matching the filter.
func (r *GormRegistrationRepository) List(filter RegistrationListFilter) ([]models.Registration, int64, error) {
	var registrations []models.Registration
	query := r.db.Model(&models.Registration{})

	if filter.EventID > 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", strings.ToLower(strings.TrimSpace(filter.Email)))
	}
	if filter.RegistrationNo != "" {
		query = query.Where("registration_no = ?", strings.TrimSpace(filter.RegistrationNo))
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	err := query.Order("created_at DESC").
		Preload("Category").
		Find(&registrations).Error
	if err != nil {
		return nil, 0, err
	}
	return registrations, total, nil
}

// Update saves a registration.
func (r *GormRegistrationRepository) Update(registration *models.Registration) error {
	return r.db.Save(registration).Error
}
