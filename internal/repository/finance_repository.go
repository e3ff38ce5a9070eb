package repository

import (
	"fmt"
	"time"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/models"

	"gorm.io/gorm"
)

// FinanceRepository aggregate queries over confirmed registrations.
// Aggregation only, no business rules.
type FinanceRepository interface {
	GetSummary(startAt, endAt time.Time) (FinanceSummaryRow, error)
	GetCategoryBreakdown(startAt, endAt time.Time) ([]FinanceCategoryRow, error)
	GetDailySeries(startAt, endAt time.Time) ([]FinanceDailyRow, error)
}

// FinanceSummaryRow raw summary counts and totals.
type FinanceSummaryRow struct {
	RegistrationsTotal     int64
	RegistrationsConfirmed int64
	RegistrationsPending   int64
	RegistrationsCancelled int64
	RevenueConfirmed       float64
	Currency               string
}

// FinanceCategoryRow revenue grouped by registration tier.
type FinanceCategoryRow struct {
	CategoryID uint
	Confirmed  int64
	Revenue    float64
}

// FinanceDailyRow per-day confirmed registrations and revenue.
type FinanceDailyRow struct {
	Day       string
	Confirmed int64
	Revenue   float64
}

// GormFinanceRepository GORM implementation.
type GormFinanceRepository struct {
	db *gorm.DB
}

// NewFinanceRepository creates the finance repository.
func NewFinanceRepository(db *gorm.DB) *GormFinanceRepository {
	return &GormFinanceRepository{db: db}
}

func (r *GormFinanceRepository) registrationBase(startAt, endAt time.Time) *gorm.DB {
	return r.db.Model(&models.Registration{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt)
}

// GetSummary returns overall registration counts and confirmed revenue.
func (r *GormFinanceRepository) GetSummary(startAt, endAt time.Time) (FinanceSummaryRow, error) {
	result := FinanceSummaryRow{Currency: "BRL"}

	if err := r.registrationBase(startAt, endAt).Count(&result.RegistrationsTotal).Error; err != nil {
		return result, err
	}
	if err := r.registrationBase(startAt, endAt).
		Where("status = ?", constants.RegistrationStatusConfirmed).
		Count(&result.RegistrationsConfirmed).Error; err != nil {
		return result, err
	}
	if err := r.registrationBase(startAt, endAt).
		Where("status = ?", constants.RegistrationStatusPending).
		Count(&result.RegistrationsPending).Error; err != nil {
		return result, err
	}
	if err := r.registrationBase(startAt, endAt).
		Where("status = ?", constants.RegistrationStatusCancelled).
		Count(&result.RegistrationsCancelled).Error; err != nil {
		return result, err
	}

	var revenue *float64
	if err := r.registrationBase(startAt, endAt).
		Where("status = ?", constants.RegistrationStatusConfirmed).
		Select("SUM(amount)").
		Scan(&revenue).Error; err != nil {
		return result, err
	}
	if revenue != nil {
		result.RevenueConfirmed = *revenue
	}
	return result, nil
}

// GetCategoryBreakdown returns confirmed counts and revenue per tier.
func (r *GormFinanceRepository) GetCategoryBreakdown(startAt, endAt time.Time) ([]FinanceCategoryRow, error) {
	rows := make([]FinanceCategoryRow, 0)
	err := r.registrationBase(startAt, endAt).
		Where("status = ?", constants.RegistrationStatusConfirmed).
		Select("category_id, COUNT(*) as confirmed, SUM(amount) as revenue").
		Group("category_id").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetDailySeries returns the per-day confirmed series.
func (r *GormFinanceRepository) GetDailySeries(startAt, endAt time.Time) ([]FinanceDailyRow, error) {
	rows := make([]FinanceDailyRow, 0)
	dayExpr := "CAST(date(created_at) AS TEXT)"
	err := r.registrationBase(startAt, endAt).
		Where("status = ?", constants.RegistrationStatusConfirmed).
		Select(fmt.Sprintf("%s as day, COUNT(*) as confirmed, SUM(amount) as revenue", dayExpr)).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
