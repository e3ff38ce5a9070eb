package repository

import (
	"errors"
	"strings"

	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IssuedCertificateRepository issued certificate data access.
type IssuedCertificateRepository interface {
	GetByID(id uint) (*models.IssuedCertificate, error)
	GetByEventAndEmail(eventID uint, email string) (*models.IssuedCertificate, error)
	Upsert(cert *models.IssuedCertificate) error
	FindByCode(code string) (*models.IssuedCertificate, error)
	FindFirstByCodes(codes []string) (*models.IssuedCertificate, error)
	List(filter IssuedCertificateListFilter) ([]models.IssuedCertificate, int64, error)
}

// GormIssuedCertificateRepository GORM implementation.
type GormIssuedCertificateRepository struct {
	db *gorm.DB
}

// NewIssuedCertificateRepository creates the issued-certificate repository.
func NewIssuedCertificateRepository(db *gorm.DB) *GormIssuedCertificateRepository {
	return &GormIssuedCertificateRepository{db: db}
}

// GetByID returns one issuance row with its event and translations.
func (r *GormIssuedCertificateRepository) GetByID(id uint) (*models.IssuedCertificate, error) {
	var cert models.IssuedCertificate
	err := r.db.Preload("Event").Preload("Event.Translations").First(&cert, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

// GetByEventAndEmail returns the issuance row of (event, normalized email).
func (r *GormIssuedCertificateRepository) GetByEventAndEmail(eventID uint, email string) (*models.IssuedCertificate, error) {
	if eventID == 0 || email == "" {
		return nil, nil
	}
	var cert models.IssuedCertificate
	err := r.db.Where("event_id = ? AND email = ?", eventID, email).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

// Upsert writes the issuance row keyed on (event_id, email). A conflict
// keeps the original code and issue date and refreshes the rest.
func (r *GormIssuedCertificateRepository) Upsert(cert *models.IssuedCertificate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}, {Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "pdf_url", "keywords_matched", "keywords_provided", "updated_at",
		}),
	}).Create(cert).Error
}

// FindByCode looks up a certificate by code, case-insensitively. LIKE
// wildcards in the input are escaped so a submitted "%" cannot match an
// arbitrary row.
func (r *GormIssuedCertificateRepository) FindByCode(code string) (*models.IssuedCertificate, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	var cert models.IssuedCertificate
	operator := likeOperatorByDialect(dbDialectName(r.db))
	err := r.db.Where("code "+operator+" ? ESCAPE '\\'", escapeLikePattern(code)).Preload("Event").First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

// FindFirstByCodes returns the first certificate whose code matches any
// candidate, case-insensitively. Used for "did you mean" suggestions.
func (r *GormIssuedCertificateRepository) FindFirstByCodes(codes []string) (*models.IssuedCertificate, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	operator := likeOperatorByDialect(dbDialectName(r.db))
	parts := make([]string, 0, len(codes))
	args := make([]interface{}, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		parts = append(parts, "code "+operator+" ? ESCAPE '\\'")
		args = append(args, escapeLikePattern(c))
	}
	if len(parts) == 0 {
		return nil, nil
	}
	var cert models.IssuedCertificate
	err := r.db.Where(strings.Join(parts, " OR "), args...).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cert, nil
}

// List returns issued certificates matching the filter.
func (r *GormIssuedCertificateRepository) List(filter IssuedCertificateListFilter) ([]models.IssuedCertificate, int64, error) {
	var certs []models.IssuedCertificate
	query := r.db.Model(&models.IssuedCertificate{})

	if filter.EventID > 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Code != "" {
		operator := likeOperatorByDialect(dbDialectName(r.db))
		query = query.Where("code "+operator+" ?", "%"+strings.TrimSpace(filter.Code)+"%")
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
	if err := query.Order("issued_at DESC").Preload("Event").Find(&certs).Error; err != nil {
		return nil, 0, err
	}
	return certs, total, nil
}
