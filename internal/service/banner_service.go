package service

import (
	"strings"
	"time"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/repository"
)

// BannerService handles home-page banners.
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService creates a BannerService.
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// BannerInput creates or updates a banner.
type BannerInput struct {
	Name         string                 `json:"name"`
	Position     string                 `json:"position"`
	TitleJSON    map[string]interface{} `json:"title"`
	SubtitleJSON map[string]interface{} `json:"subtitle"`
	Image        string                 `json:"image"`
	MobileImage  string                 `json:"mobile_image"`
	LinkType     string                 `json:"link_type"`
	LinkValue    string                 `json:"link_value"`
	OpenInNewTab *bool                  `json:"open_in_new_tab"`
	IsActive     *bool                  `json:"is_active"`
	StartAt      *time.Time             `json:"start_at"`
	EndAt        *time.Time             `json:"end_at"`
	SortOrder    int                    `json:"sort_order"`
}

// ListAdmin lists banners for the back office.
func (s *BannerService) ListAdmin(position, search string, isActive *bool, page, pageSize int) ([]models.Banner, int64, error) {
	filter := repository.BannerListFilter{
		Page:     page,
		PageSize: pageSize,
		Position: strings.TrimSpace(position),
		Search:   strings.TrimSpace(search),
		IsActive: isActive,
		OrderBy:  "sort_order DESC, created_at DESC",
	}
	return s.repo.List(filter)
}

// ListPublic lists the active banners of a position inside their window.
func (s *BannerService) ListPublic(position string, limit int) ([]models.Banner, error) {
	return s.repo.ListValidByPosition(normalizeBannerPosition(position), limit, time.Now())
}

// GetByID returns one banner.
func (s *BannerService) GetByID(id uint) (*models.Banner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	return banner, nil
}

// Create creates a banner.
func (s *BannerService) Create(input BannerInput) (*models.Banner, error) {
	banner, err := buildBannerEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Update updates a banner.
func (s *BannerService) Update(id uint, input BannerInput) (*models.Banner, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	banner, err := buildBannerEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete removes a banner.
func (s *BannerService) Delete(id uint) error {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildBannerEntity(input BannerInput, existing *models.Banner) (*models.Banner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidBanner
	}
	image := strings.TrimSpace(input.Image)
	if image == "" {
		return nil, ErrInvalidBanner
	}

	position := normalizeBannerPosition(input.Position)
	linkType := normalizeBannerLinkType(input.LinkType)
	if linkType == "" {
		return nil, ErrInvalidBanner
	}

	startAt := input.StartAt
	endAt := input.EndAt
	if startAt != nil && endAt != nil && endAt.Before(*startAt) {
		return nil, ErrInvalidBanner
	}

	linkValue := strings.TrimSpace(input.LinkValue)
	if linkType == constants.BannerLinkTypeNone {
		linkValue = ""
	}
	if linkType != constants.BannerLinkTypeNone && linkValue == "" {
		return nil, ErrInvalidBanner
	}

	if existing == nil {
		entity := &models.Banner{
			Name:         name,
			Position:     position,
			TitleJSON:    normalizeMultiLangJSON(input.TitleJSON),
			SubtitleJSON: normalizeMultiLangJSON(input.SubtitleJSON),
			Image:        image,
			MobileImage:  strings.TrimSpace(input.MobileImage),
			LinkType:     linkType,
			LinkValue:    linkValue,
			StartAt:      startAt,
			EndAt:        endAt,
			SortOrder:    input.SortOrder,
		}
		if input.OpenInNewTab != nil {
			entity.OpenInNewTab = *input.OpenInNewTab
		}
		if input.IsActive != nil {
			entity.IsActive = *input.IsActive
		} else {
			entity.IsActive = true
		}
		return entity, nil
	}

	existing.Name = name
	existing.Position = position
	existing.TitleJSON = normalizeMultiLangJSON(input.TitleJSON)
	existing.SubtitleJSON = normalizeMultiLangJSON(input.SubtitleJSON)
	existing.Image = image
	existing.MobileImage = strings.TrimSpace(input.MobileImage)
	existing.LinkType = linkType
	existing.LinkValue = linkValue
	existing.StartAt = startAt
	existing.EndAt = endAt
	existing.SortOrder = input.SortOrder
	if input.OpenInNewTab != nil {
		existing.OpenInNewTab = *input.OpenInNewTab
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	return existing, nil
}

func normalizeBannerPosition(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return constants.BannerPositionHomeHero
	}
	return value
}

func normalizeBannerLinkType(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", constants.BannerLinkTypeNone:
		return constants.BannerLinkTypeNone
	case constants.BannerLinkTypeURL:
		return constants.BannerLinkTypeURL
	case constants.BannerLinkTypeEvent:
		return constants.BannerLinkTypeEvent
	default:
		return ""
	}
}

func normalizeMultiLangJSON(raw map[string]interface{}) models.JSON {
	result := models.JSON{}
	for _, key := range constants.SupportedLocales {
		value, ok := raw[key]
		if !ok {
			result[key] = ""
			continue
		}
		if text, ok := value.(string); ok {
			result[key] = strings.TrimSpace(text)
			continue
		}
		result[key] = value
	}
	return result
}
