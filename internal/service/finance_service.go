package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/civeni/civeni-api/internal/repository"
)

const financeCustomMaxDays = 366

// FinanceService aggregates registration revenue for the back office.
type FinanceService struct {
	financeRepo  repository.FinanceRepository
	categoryRepo repository.RegistrationCategoryRepository
}

// NewFinanceService creates a FinanceService.
func NewFinanceService(financeRepo repository.FinanceRepository, categoryRepo repository.RegistrationCategoryRepository) *FinanceService {
	return &FinanceService{financeRepo: financeRepo, categoryRepo: categoryRepo}
}

// FinanceQueryInput selects the reporting window.
type FinanceQueryInput struct {
	Range string
	From  *time.Time
	To    *time.Time
}

// FinanceSummaryResponse is the back-office finance overview.
type FinanceSummaryResponse struct {
	Range                  string                    `json:"range"`
	StartAt                time.Time                 `json:"start_at"`
	EndAt                  time.Time                 `json:"end_at"`
	RegistrationsTotal     int64                     `json:"registrations_total"`
	RegistrationsConfirmed int64                     `json:"registrations_confirmed"`
	RegistrationsPending   int64                     `json:"registrations_pending"`
	RegistrationsCancelled int64                     `json:"registrations_cancelled"`
	RevenueConfirmed       string                    `json:"revenue_confirmed"`
	Currency               string                    `json:"currency"`
	Categories             []FinanceCategorySummary  `json:"categories"`
}

// FinanceCategorySummary is the revenue of one registration tier.
type FinanceCategorySummary struct {
	CategoryID uint                   `json:"category_id"`
	Title      map[string]interface{} `json:"title,omitempty"`
	Confirmed  int64                  `json:"confirmed"`
	Revenue    string                 `json:"revenue"`
}

// FinanceSeriesResponse is the per-day confirmed revenue series.
type FinanceSeriesResponse struct {
	Range   string               `json:"range"`
	StartAt time.Time            `json:"start_at"`
	EndAt   time.Time            `json:"end_at"`
	Points  []FinanceSeriesPoint `json:"points"`
}

// FinanceSeriesPoint is one day of the series.
type FinanceSeriesPoint struct {
	Day       string `json:"day"`
	Confirmed int64  `json:"confirmed"`
	Revenue   string `json:"revenue"`
}

// GetSummary returns counts, confirmed revenue and the category breakdown.
func (s *FinanceService) GetSummary(input FinanceQueryInput) (*FinanceSummaryResponse, error) {
	window, err := resolveFinanceWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := s.financeRepo.GetSummary(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.financeRepo.GetCategoryBreakdown(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}

	categories := make([]FinanceCategorySummary, 0, len(breakdown))
	for _, row := range breakdown {
		entry := FinanceCategorySummary{
			CategoryID: row.CategoryID,
			Confirmed:  row.Confirmed,
			Revenue:    formatMoneyValue(row.Revenue),
		}
		if category, err := s.categoryRepo.GetByID(row.CategoryID); err == nil && category != nil {
			entry.Title = category.TitleJSON
		}
		categories = append(categories, entry)
	}

	return &FinanceSummaryResponse{
		Range:                  window.rangeKey,
		StartAt:                window.startAt,
		EndAt:                  window.endAt,
		RegistrationsTotal:     summary.RegistrationsTotal,
		RegistrationsConfirmed: summary.RegistrationsConfirmed,
		RegistrationsPending:   summary.RegistrationsPending,
		RegistrationsCancelled: summary.RegistrationsCancelled,
		RevenueConfirmed:       formatMoneyValue(summary.RevenueConfirmed),
		Currency:               summary.Currency,
		Categories:             categories,
	}, nil
}

// GetSeries returns the per-day confirmed registrations and revenue.
func (s *FinanceService) GetSeries(input FinanceQueryInput) (*FinanceSeriesResponse, error) {
	window, err := resolveFinanceWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	rows, err := s.financeRepo.GetDailySeries(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]repository.FinanceDailyRow, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row
	}

	points := make([]FinanceSeriesPoint, 0)
	for day := window.startAt; day.Before(window.endAt); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		point := FinanceSeriesPoint{Day: key, Revenue: formatMoneyValue(0)}
		if row, ok := byDay[key]; ok {
			point.Confirmed = row.Confirmed
			point.Revenue = formatMoneyValue(row.Revenue)
		}
		points = append(points, point)
	}

	return &FinanceSeriesResponse{
		Range:   window.rangeKey,
		StartAt: window.startAt,
		EndAt:   window.endAt,
		Points:  points,
	}, nil
}

type financeWindow struct {
	rangeKey string
	startAt  time.Time
	endAt    time.Time
}

func resolveFinanceWindow(input FinanceQueryInput, now time.Time) (financeWindow, error) {
	rangeKey := strings.ToLower(strings.TrimSpace(input.Range))
	if rangeKey == "" {
		rangeKey = "30d"
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	window := financeWindow{rangeKey: rangeKey}

	switch rangeKey {
	case "today":
		window.startAt = todayStart
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "7d":
		window.startAt = todayStart.AddDate(0, 0, -6)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "30d":
		window.startAt = todayStart.AddDate(0, 0, -29)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "custom":
		if input.From == nil || input.To == nil {
			return financeWindow{}, ErrFinanceRangeInvalid
		}
		startAt := *input.From
		endAt := *input.To
		if endAt.Before(startAt) {
			return financeWindow{}, ErrFinanceRangeInvalid
		}
		if endAt.Sub(startAt) > time.Hour*24*financeCustomMaxDays {
			return financeWindow{}, ErrFinanceRangeInvalid
		}
		window.startAt = startAt
		window.endAt = endAt.Add(time.Second)
	default:
		return financeWindow{}, ErrFinanceRangeInvalid
	}

	if !window.endAt.After(window.startAt) {
		return financeWindow{}, ErrFinanceRangeInvalid
	}
	return window, nil
}

func formatMoneyValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
