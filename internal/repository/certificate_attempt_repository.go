package repository

import (
	"time"

	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
)

// CertificateAttemptRepository attempt log data access.
type CertificateAttemptRepository interface {
	Create(attempt *models.CertificateAttempt) error
	CountByEmailSince(email string, since time.Time) (int64, error)
	List(filter CertificateAttemptListFilter) ([]models.CertificateAttempt, int64, error)
}

// GormCertificateAttemptRepository GORM implementation.
type GormCertificateAttemptRepository struct {
	db *gorm.DB
}

// NewCertificateAttemptRepository creates the attempt repository.
func NewCertificateAttemptRepository(db *gorm.DB) *GormCertificateAttemptRepository {
	return &GormCertificateAttemptRepository{db: db}
}

// Create appends an attempt row.
func (r *GormCertificateAttemptRepository) Create(attempt *models.CertificateAttempt) error {
	return r.db.Create(attempt).Error
}

// CountByEmailSince counts attempts of a normalized email inside the
// rolling window.
func (r *GormCertificateAttemptRepository) CountByEmailSince(email string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.CertificateAttempt{}).
		Where("email = ? AND created_at >= ?", email, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// List returns attempts matching the filter.
func (r *GormCertificateAttemptRepository) List(filter CertificateAttemptListFilter) ([]models.CertificateAttempt, int64, error) {
	var attempts []models.CertificateAttempt
	query := r.db.Model(&models.CertificateAttempt{})

	if filter.EventID > 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Succeeded != nil {
		query = query.Where("succeeded = ?", *filter.Succeeded)
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
	if err := query.Order("created_at DESC").Find(&attempts).Error; err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}
