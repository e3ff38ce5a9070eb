package repository

import (
	"errors"
	"strings"

	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
)

// WorkRepository work-submission data access.
type WorkRepository interface {
	Create(work *models.WorkSubmission) error
	GetByID(id uint) (*models.WorkSubmission, error)
	List(filter WorkListFilter) ([]models.WorkSubmission, int64, error)
	Update(work *models.WorkSubmission) error
}

// GormWorkRepository GORM implementation.
type GormWorkRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates the work-submission repository.
func NewWorkRepository(db *gorm.DB) *GormWorkRepository {
	return &GormWorkRepository{db: db}
}

// Create inserts a submission.
func (r *GormWorkRepository) Create(work *models.WorkSubmission) error {
	return r.db.Create(work).Error
}

// GetByID looks up a submission by ID.
func (r *GormWorkRepository) GetByID(id uint) (*models.WorkSubmission, error) {
	if id == 0 {
		return nil, nil
	}
	var work models.WorkSubmission
	if err := r.db.First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &work, nil
}

// List returns submissions matching the filter.
func (r *GormWorkRepository) List(filter WorkListFilter) ([]models.WorkSubmission, int64, error) {
	var works []models.WorkSubmission
	query := r.db.Model(&models.WorkSubmission{})

	if filter.EventID > 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ThematicArea != "" {
		query = query.Where("thematic_area = ?", filter.ThematicArea)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		operator := likeOperatorByDialect(dbDialectName(r.db))
		query = query.Where(
			"title "+operator+" ? OR author_name "+operator+" ? OR author_email "+operator+" ?",
			like, like, like,
		)
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
	if err := query.Order("created_at DESC").Find(&works).Error; err != nil {
		return nil, 0, err
	}
	return works, total, nil
}

// Update saves a submission.
func (r *GormWorkRepository) Update(work *models.WorkSubmission) error {
	return r.db.Save(work).Error
}
