package service

import (
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/queue"
	"github.com/civeni/civeni-api/internal/repository"
	"github.com/civeni/civeni-api/internal/storage"
)

// WorkService handles academic work submissions.
type WorkService struct {
	eventRepo   repository.EventRepository
	workRepo    repository.WorkRepository
	store       *storage.Store
	queueClient *queue.Client
}

// NewWorkService creates a WorkService.
func NewWorkService(eventRepo repository.EventRepository, workRepo repository.WorkRepository, store *storage.Store, queueClient *queue.Client) *WorkService {
	return &WorkService{eventRepo: eventRepo, workRepo: workRepo, store: store, queueClient: queueClient}
}

// SubmitInput is one work submission from the public site.
type SubmitInput struct {
	EventID      uint
	AuthorName   string
	AuthorEmail  string
	CoAuthors    []string
	Title        string
	Abstract     string
	ThematicArea string
	Locale       string
	File         *multipart.FileHeader
}

// Submit validates and stores a work submission. The attached file, when
// present, lands in the works bucket.
func (s *WorkService) Submit(input SubmitInput) (*models.WorkSubmission, string, error) {
	locale := i18n.Normalize(input.Locale)

	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, "", err
	}
	if event == nil || event.Status != constants.EventStatusPublished {
		return nil, "", ErrNotFound
	}

	email := strings.ToLower(strings.TrimSpace(input.AuthorEmail))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", ErrInvalidEmail
	}
	authorName := strings.TrimSpace(input.AuthorName)
	title := strings.TrimSpace(input.Title)
	abstract := strings.TrimSpace(input.Abstract)
	if authorName == "" || title == "" || abstract == "" {
		return nil, "", ErrInvalidName
	}

	fileURL := ""
	if input.File != nil {
		fileURL, err = s.store.SaveUpload(input.File, constants.BucketWorks)
		if err != nil {
			return nil, "", err
		}
	}

	coAuthors := make([]string, 0, len(input.CoAuthors))
	for _, name := range input.CoAuthors {
		name = strings.TrimSpace(name)
		if name != "" {
			coAuthors = append(coAuthors, name)
		}
	}

	work := &models.WorkSubmission{
		EventID:      event.ID,
		AuthorName:   authorName,
		AuthorEmail:  email,
		CoAuthors:    models.StringArray(coAuthors),
		Title:        title,
		Abstract:     abstract,
		ThematicArea: strings.TrimSpace(input.ThematicArea),
		FileURL:      fileURL,
		Locale:       locale,
		Status:       constants.WorkStatusReceived,
	}
	if err := s.workRepo.Create(work); err != nil {
		return nil, "", err
	}

	if err := s.queueClient.EnqueueWorkReceived(queue.WorkReceivedPayload{WorkID: work.ID}); err != nil {
		logger.Warnw("work_email_enqueue_failed", "work_id", work.ID, "error", err)
	}

	return work, i18n.T(locale, "msg.work_received"), nil
}

// Get returns one submission for the back office.
func (s *WorkService) Get(id uint) (*models.WorkSubmission, error) {
	work, err := s.workRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, ErrNotFound
	}
	return work, nil
}

// ListAdmin lists submissions for the back office.
func (s *WorkService) ListAdmin(filter repository.WorkListFilter) ([]models.WorkSubmission, int64, error) {
	return s.workRepo.List(filter)
}

// UpdateStatus moves a submission through the review pipeline.
func (s *WorkService) UpdateStatus(id uint, status, reviewNote string) (*models.WorkSubmission, error) {
	switch status {
	case constants.WorkStatusReceived, constants.WorkStatusUnderReview, constants.WorkStatusApproved, constants.WorkStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}
	work, err := s.workRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, ErrNotFound
	}
	work.Status = status
	if note := strings.TrimSpace(reviewNote); note != "" {
		work.ReviewNote = note
	}
	if err := s.workRepo.Update(work); err != nil {
		return nil, err
	}
	return work, nil
}
