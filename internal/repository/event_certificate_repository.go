package repository

import (
	"errors"

	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventCertificateRepository certificate config data access.
type EventCertificateRepository interface {
	GetByEventID(eventID uint) (*models.EventCertificate, error)
	Upsert(cfg *models.EventCertificate) error
	Delete(eventID uint) error
}

// GormEventCertificateRepository GORM implementation.
type GormEventCertificateRepository struct {
	db *gorm.DB
}

// NewEventCertificateRepository creates the certificate config repository.
func NewEventCertificateRepository(db *gorm.DB) *GormEventCertificateRepository {
	return &GormEventCertificateRepository{db: db}
}

// GetByEventID returns the config row of an event.
func (r *GormEventCertificateRepository) GetByEventID(eventID uint) (*models.EventCertificate, error) {
	if eventID == 0 {
		return nil, nil
	}
	var cfg models.EventCertificate
	if err := r.db.Where("event_id = ?", eventID).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Upsert writes the config, keyed on event_id.
func (r *GormEventCertificateRepository) Upsert(cfg *models.EventCertificate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_enabled", "keywords", "required_correct", "language",
			"city", "country", "hours", "updated_at",
		}),
	}).Create(cfg).Error
}

// Delete removes the config of an event.
func (r *GormEventCertificateRepository) Delete(eventID uint) error {
	if eventID == 0 {
		return nil
	}
	return r.db.Where("event_id = ?", eventID).Delete(&models.EventCertificate{}).Error
}
