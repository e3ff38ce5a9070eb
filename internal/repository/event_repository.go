package repository

import (
	"errors"
	"strings"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository event data access.
type EventRepository interface {
	List(filter EventListFilter) ([]models.Event, int64, error)
	GetByID(id uint) (*models.Event, error)
	GetBySlug(slug string, onlyPublished bool) (*models.Event, error)
	Create(event *models.Event) error
	Update(event *models.Event) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	GetTranslation(eventID uint, locale string) (*models.EventTranslation, error)
	ListTranslations(eventID uint) ([]models.EventTranslation, error)
	UpsertTranslation(tr *models.EventTranslation) error
	DeleteTranslation(eventID uint, locale string) error
}

// GormEventRepository GORM implementation.
type GormEventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates the event repository.
func NewEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// List returns events matching the filter.
func (r *GormEventRepository) List(filter EventListFilter) ([]models.Event, int64, error) {
	var events []models.Event
	query := r.db.Model(&models.Event{})

	if filter.OnlyPublished {
		query = query.Where("status = ?", constants.EventStatusPublished)
	} else if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OnlyFeatured {
		query = query.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("slug "+likeOperatorByDialect(dbDialectName(r.db))+" ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "sort_order ASC, starts_at DESC"
	}

	if err := query.Order(orderBy).Preload("Translations").Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// GetByID looks up an event by ID with translations.
func (r *GormEventRepository) GetByID(id uint) (*models.Event, error) {
	if id == 0 {
		return nil, nil
	}
	var event models.Event
	if err := r.db.Preload("Translations").Preload("Certificate").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// GetBySlug looks up an event by slug.
func (r *GormEventRepository) GetBySlug(slug string, onlyPublished bool) (*models.Event, error) {
	query := r.db.Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("status = ?", constants.EventStatusPublished)
	}

	var event models.Event
	if err := query.Preload("Translations").First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Create inserts an event.
func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update saves an event.
func (r *GormEventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete soft-deletes an event.
func (r *GormEventRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Event{}, id).Error
}

// CountBySlug counts events with the slug, optionally excluding one ID.
func (r *GormEventRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Event{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetTranslation returns the (event, locale) translation row.
func (r *GormEventRepository) GetTranslation(eventID uint, locale string) (*models.EventTranslation, error) {
	var tr models.EventTranslation
	err := r.db.Where("event_id = ? AND locale = ?", eventID, locale).First(&tr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tr, nil
}

// ListTranslations returns all translations of an event.
func (r *GormEventRepository) ListTranslations(eventID uint) ([]models.EventTranslation, error) {
	translations := make([]models.EventTranslation, 0)
	err := r.db.Where("event_id = ?", eventID).Order("locale ASC").Find(&translations).Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}

// UpsertTranslation writes a translation, keyed on (event_id, locale).
func (r *GormEventRepository) UpsertTranslation(tr *models.EventTranslation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "updated_at"}),
	}).Create(tr).Error
}

// DeleteTranslation removes one (event, locale) translation.
func (r *GormEventRepository) DeleteTranslation(eventID uint, locale string) error {
	return r.db.Where("event_id = ? AND locale = ?", eventID, locale).
		Delete(&models.EventTranslation{}).Error
}
