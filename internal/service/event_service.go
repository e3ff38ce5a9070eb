package service

import (
	"strings"
	"time"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/repository"
)

// EventService handles events, their translations and certificate config.
type EventService struct {
	eventRepo  repository.EventRepository
	configRepo repository.EventCertificateRepository
}

// NewEventService creates an EventService.
func NewEventService(eventRepo repository.EventRepository, configRepo repository.EventCertificateRepository) *EventService {
	return &EventService{eventRepo: eventRepo, configRepo: configRepo}
}

// ListPublic lists published events for the site.
func (s *EventService) ListPublic(featuredOnly bool, page, pageSize int) ([]models.Event, int64, error) {
	filter := repository.EventListFilter{
		Page:          page,
		PageSize:      pageSize,
		OnlyPublished: true,
		OnlyFeatured:  featuredOnly,
	}
	return s.eventRepo.List(filter)
}

// GetPublicBySlug returns one published event with its translations.
func (s *EventService) GetPublicBySlug(slug string) (*models.Event, error) {
	event, err := s.eventRepo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// ListAdmin lists events for the back office.
func (s *EventService) ListAdmin(status, search string, page, pageSize int) ([]models.Event, int64, error) {
	filter := repository.EventListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
		Search:   search,
		OrderBy:  "created_at DESC",
	}
	return s.eventRepo.List(filter)
}

// GetAdmin returns one event regardless of status.
func (s *EventService) GetAdmin(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// EventInput creates or updates an event.
type EventInput struct {
	Slug        string  `json:"slug"`
	Status      string  `json:"status"`
	BannerImage string  `json:"banner_image"`
	YoutubeURL  string  `json:"youtube_url"`
	IsFeatured  *bool   `json:"is_featured"`
	SortOrder   *int    `json:"sort_order"`
	StartsAt    *string `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
}

var allowedEventStatuses = map[string]struct{}{
	constants.EventStatusDraft:     {},
	constants.EventStatusPublished: {},
	constants.EventStatusArchived:  {},
}

// Create creates an event.
func (s *EventService) Create(input EventInput) (*models.Event, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrSlugExists
	}
	count, err := s.eventRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	event := &models.Event{
		Slug:        slug,
		Status:      constants.EventStatusDraft,
		BannerImage: input.BannerImage,
		YoutubeURL:  input.YoutubeURL,
	}
	applyEventInput(event, input)
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update updates an event.
func (s *EventService) Update(id uint, input EventInput) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	if slug != "" && slug != event.Slug {
		count, err := s.eventRepo.CountBySlug(slug, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
		event.Slug = slug
	}
	event.BannerImage = input.BannerImage
	event.YoutubeURL = input.YoutubeURL
	applyEventInput(event, input)
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(id uint) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrNotFound
	}
	return s.eventRepo.Delete(id)
}

// TranslationInput creates or replaces one locale of an event.
type TranslationInput struct {
	Locale      string `json:"locale"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SaveTranslation upserts an event translation.
func (s *EventService) SaveTranslation(eventID uint, input TranslationInput) (*models.EventTranslation, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	locale := strings.TrimSpace(input.Locale)
	title := strings.TrimSpace(input.Title)
	if locale == "" || title == "" {
		return nil, ErrInvalidTranslation
	}
	tr := &models.EventTranslation{
		EventID:     eventID,
		Locale:      locale,
		Title:       title,
		Description: input.Description,
	}
	if err := s.eventRepo.UpsertTranslation(tr); err != nil {
		return nil, err
	}
	return s.eventRepo.GetTranslation(eventID, locale)
}

// DeleteTranslation removes one locale of an event.
func (s *EventService) DeleteTranslation(eventID uint, locale string) error {
	return s.eventRepo.DeleteTranslation(eventID, strings.TrimSpace(locale))
}

// CertificateConfigInput configures certificate issuance for an event.
type CertificateConfigInput struct {
	IsEnabled       bool     `json:"is_enabled"`
	Keywords        []string `json:"keywords"`
	RequiredCorrect int      `json:"required_correct"`
	Language        string   `json:"language"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Hours           int      `json:"hours"`
}

// SaveCertificateConfig upserts the issuance config. Keywords are stored
// as given; matching normalizes at issuance time.
func (s *EventService) SaveCertificateConfig(eventID uint, input CertificateConfigInput) (*models.EventCertificate, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}

	keywords := make([]string, 0, len(input.Keywords))
	for _, kw := range input.Keywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if input.IsEnabled {
		if len(keywords) == 0 {
			return nil, ErrCertificateConfigInvalid
		}
		if input.RequiredCorrect < 1 || input.RequiredCorrect > len(keywords) {
			return nil, ErrCertificateConfigInvalid
		}
	}
	if input.RequiredCorrect < 1 {
		input.RequiredCorrect = constants.CertificateKeywordCount
	}
	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = "pt-BR"
	}

	cfg := &models.EventCertificate{
		EventID:         eventID,
		IsEnabled:       input.IsEnabled,
		Keywords:        models.StringArray(keywords),
		RequiredCorrect: input.RequiredCorrect,
		Language:        language,
		City:            strings.TrimSpace(input.City),
		Country:         strings.TrimSpace(input.Country),
		Hours:           input.Hours,
	}
	if err := s.configRepo.Upsert(cfg); err != nil {
		return nil, err
	}
	return s.configRepo.GetByEventID(eventID)
}

// GetCertificateConfig returns the issuance config, nil when unset.
func (s *EventService) GetCertificateConfig(eventID uint) (*models.EventCertificate, error) {
	return s.configRepo.GetByEventID(eventID)
}

func applyEventInput(event *models.Event, input EventInput) {
	if status := strings.TrimSpace(input.Status); status != "" {
		if _, ok := allowedEventStatuses[status]; ok {
			event.Status = status
		}
	}
	if input.IsFeatured != nil {
		event.IsFeatured = *input.IsFeatured
	}
	if input.SortOrder != nil {
		event.SortOrder = *input.SortOrder
	}
	if t := parseEventTime(input.StartsAt); t != nil {
		event.StartsAt = t
	}
	if t := parseEventTime(input.EndsAt); t != nil {
		event.EndsAt = t
	}
}

func parseEventTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
