package repository

import (
	"errors"

	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
)

// RegistrationCategoryRepository registration tier data access.
type RegistrationCategoryRepository interface {
	ListByEvent(eventID uint, onlyActive bool) ([]models.RegistrationCategory, error)
	GetByID(id uint) (*models.RegistrationCategory, error)
	Create(category *models.RegistrationCategory) error
	Update(category *models.RegistrationCategory) error
	Delete(id uint) error
}

// GormRegistrationCategoryRepository GORM implementation.
type GormRegistrationCategoryRepository struct {
	db *gorm.DB
}

// NewRegistrationCategoryRepository creates the category repository.
func NewRegistrationCategoryRepository(db *gorm.DB) *GormRegistrationCategoryRepository {
	return &GormRegistrationCategoryRepository{db: db}
}

// ListByEvent returns the tiers of an event.
func (r *GormRegistrationCategoryRepository) ListByEvent(eventID uint, onlyActive bool) ([]models.RegistrationCategory, error) {
	categories := make([]models.RegistrationCategory, 0)
	query := r.db.Where("event_id = ?", eventID)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("sort_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID looks up a tier by ID.
func (r *GormRegistrationCategoryRepository) GetByID(id uint) (*models.RegistrationCategory, error) {
	if id == 0 {
		return nil, nil
	}
	var category models.RegistrationCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a tier.
func (r *GormRegistrationCategoryRepository) Create(category *models.RegistrationCategory) error {
	return r.db.Create(category).Error
}

// Update saves a tier.
func (r *GormRegistrationCategoryRepository) Update(category *models.RegistrationCategory) error {
	return r.db.Save(category).Error
}

// Delete soft-deletes a tier.
func (r *GormRegistrationCategoryRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.RegistrationCategory{}, id).Error
}
