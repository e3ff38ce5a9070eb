package service

import (
	"strings"
	"time"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/repository"
)

// PostService handles news and notice articles.
type PostService struct {
	repo repository.PostRepository
}

// NewPostService creates a PostService.
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// PostInput creates or updates an article.
type PostInput struct {
	Slug        string                 `json:"slug"`
	Type        string                 `json:"type"`
	TitleJSON   map[string]interface{} `json:"title"`
	SummaryJSON map[string]interface{} `json:"summary"`
	ContentJSON map[string]interface{} `json:"content"`
	Thumbnail   string                 `json:"thumbnail"`
	IsPublished *bool                  `json:"is_published"`
}

var allowedPostTypes = map[string]struct{}{
	constants.PostTypeBlog:   {},
	constants.PostTypeNotice: {},
}

// ListPublic lists published articles.
func (s *PostService) ListPublic(postType string, page, pageSize int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		Type:          postType,
		OnlyPublished: true,
		OrderBy:       "published_at DESC, created_at DESC",
	}
	return s.repo.List(filter)
}

// GetPublicBySlug returns one published article.
func (s *PostService) GetPublicBySlug(slug string) (*models.Post, error) {
	post, err := s.repo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// ListAdmin lists articles for the back office.
func (s *PostService) ListAdmin(postType, search string, page, pageSize int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     postType,
		Search:   search,
		OrderBy:  "created_at DESC",
	}
	return s.repo.List(filter)
}

// Create creates an article.
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	if !isAllowedPostType(input.Type) {
		return nil, ErrInvalidPostType
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrSlugExists
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := &models.Post{
		Slug:        slug,
		Type:        input.Type,
		TitleJSON:   models.JSON(input.TitleJSON),
		SummaryJSON: models.JSON(input.SummaryJSON),
		ContentJSON: models.JSON(input.ContentJSON),
		Thumbnail:   input.Thumbnail,
	}
	applyPublishState(post, input.IsPublished)
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update updates an article.
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	if !isAllowedPostType(input.Type) {
		return nil, ErrInvalidPostType
	}
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	if slug != "" && slug != post.Slug {
		count, err := s.repo.CountBySlug(slug, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
		post.Slug = slug
	}

	post.Type = input.Type
	post.TitleJSON = models.JSON(input.TitleJSON)
	post.SummaryJSON = models.JSON(input.SummaryJSON)
	post.ContentJSON = models.JSON(input.ContentJSON)
	post.Thumbnail = input.Thumbnail
	applyPublishState(post, input.IsPublished)
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes an article.
func (s *PostService) Delete(id uint) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func isAllowedPostType(postType string) bool {
	_, ok := allowedPostTypes[postType]
	return ok
}

func applyPublishState(post *models.Post, isPublished *bool) {
	if isPublished == nil {
		return
	}
	post.IsPublished = *isPublished
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
}
