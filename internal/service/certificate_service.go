package service

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/civeni/civeni-api/internal/certificate"
	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/queue"
	"github.com/civeni/civeni-api/internal/repository"
	"github.com/civeni/civeni-api/internal/storage"
)

// fallbackEventName labels verification responses when the event row is gone.
const fallbackEventName = "Evento CIVENI"

// CertificateService issues participation certificates and verifies codes.
type CertificateService struct {
	eventRepo   repository.EventRepository
	configRepo  repository.EventCertificateRepository
	issuedRepo  repository.IssuedCertificateRepository
	attemptRepo repository.CertificateAttemptRepository
	store       *storage.Store
	queueClient *queue.Client
}

// NewCertificateService creates a CertificateService.
func NewCertificateService(
	eventRepo repository.EventRepository,
	configRepo repository.EventCertificateRepository,
	issuedRepo repository.IssuedCertificateRepository,
	attemptRepo repository.CertificateAttemptRepository,
	store *storage.Store,
	queueClient *queue.Client,
) *CertificateService {
	return &CertificateService{
		eventRepo:   eventRepo,
		configRepo:  configRepo,
		issuedRepo:  issuedRepo,
		attemptRepo: attemptRepo,
		store:       store,
		queueClient: queueClient,
	}
}

// IssueInput is one issuance request from a participant.
type IssueInput struct {
	EventID  uint     `json:"eventId"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName"`
	Keywords []string `json:"keywords"`
	ClientIP string   `json:"-"`
}

// IssueResult is the participant-facing outcome. Business failures come back
// with Success=false and a localized Message rather than an error.
type IssueResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AlreadyIssued bool   `json:"alreadyIssued,omitempty"`
	Code          string `json:"code,omitempty"`
	PDFURL        string `json:"pdfUrl,omitempty"`
	Matched       int    `json:"matched,omitempty"`
	FullName      string `json:"fullName,omitempty"`
	Email         string `json:"email,omitempty"`
	EventName     string `json:"eventName,omitempty"`
}

// Issue validates the request, applies the per-email rate limit, matches
// keywords and renders + stores the certificate. Issuance is idempotent per
// (event, email): a repeat request keeps the original code and issue date.
func (s *CertificateService) Issue(input IssueInput, locale string) (*IssueResult, error) {
	locale = i18n.Normalize(locale)

	if input.EventID == 0 || len(input.Keywords) != constants.CertificateKeywordCount {
		return &IssueResult{Message: i18n.T(locale, "cert.invalid_data")}, nil
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return &IssueResult{Message: i18n.T(locale, "error.email_invalid")}, nil
	}

	fullName := strings.TrimSpace(input.FullName)
	if len([]rune(fullName)) < constants.CertificateNameMinLength {
		return &IssueResult{Message: i18n.T(locale, "cert.name_min")}, nil
	}
	if runes := []rune(fullName); len(runes) > constants.CertificateNameMaxLength {
		fullName = string(runes[:constants.CertificateNameMaxLength])
	}

	since := time.Now().Add(-time.Duration(constants.CertificateAttemptWindowMinutes) * time.Minute)
	attempts, err := s.attemptRepo.CountByEmailSince(email, since)
	if err != nil {
		return nil, err
	}
	if attempts >= constants.CertificateAttemptMax {
		return &IssueResult{Message: i18n.T(locale, "cert.too_many_attempts")}, nil
	}

	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != constants.EventStatusPublished {
		return &IssueResult{Message: i18n.T(locale, "cert.event_not_found")}, nil
	}
	cfg, err := s.configRepo.GetByEventID(event.ID)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.IsEnabled || len(cfg.Keywords) == 0 {
		return &IssueResult{Message: i18n.T(locale, "cert.event_not_found")}, nil
	}

	matched := certificate.MatchCount(input.Keywords, cfg.Keywords)
	passed := matched >= cfg.RequiredCorrect

	attempt := &models.CertificateAttempt{
		EventID:   event.ID,
		Email:     email,
		ClientIP:  input.ClientIP,
		Matched:   matched,
		Succeeded: passed,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	if !passed {
		return &IssueResult{
			Message: i18n.Sprintf(locale, "cert.keywords_mismatch", matched, cfg.RequiredCorrect),
			Matched: matched,
		}, nil
	}

	existing, err := s.issuedRepo.GetByEventAndEmail(event.ID, email)
	if err != nil {
		return nil, err
	}

	code := ""
	issuedAt := time.Now()
	alreadyIssued := false
	if existing != nil {
		code = existing.Code
		issuedAt = existing.IssuedAt
		alreadyIssued = true
	} else {
		code, err = certificate.GenerateCode()
		if err != nil {
			return nil, err
		}
	}

	eventName := s.eventDisplayName(event, cfg.Language)
	pdfBytes, err := certificate.RenderPDF(certificate.RenderOptions{
		FullName:  fullName,
		EventName: eventName,
		Language:  cfg.Language,
		IssueDate: issuedAt,
		City:      cfg.City,
		Country:   cfg.Country,
		Hours:     cfg.Hours,
		Code:      code,
	})
	if err != nil {
		return nil, err
	}

	objectPath := fmt.Sprintf("%d/%s.pdf", event.ID, code)
	pdfURL, err := s.store.SaveBytes(constants.BucketCertificates, objectPath, pdfBytes)
	if err != nil {
		return nil, err
	}

	cert := &models.IssuedCertificate{
		EventID:          event.ID,
		Email:            email,
		FullName:         fullName,
		Code:             code,
		PDFURL:           pdfURL,
		KeywordsMatched:  matched,
		KeywordsProvided: models.StringArray(input.Keywords),
		IssuedAt:         issuedAt,
	}
	if err := s.issuedRepo.Upsert(cert); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueCertificateEmail(queue.CertificateEmailPayload{CertificateID: cert.ID}); err != nil {
		logger.Warnw("certificate_email_enqueue_failed", "certificate_id", cert.ID, "error", err)
	}

	message := i18n.T(locale, "cert.success")
	if alreadyIssued {
		message = i18n.Sprintf(locale, "cert.already_issued", formatIssueDate(issuedAt, locale))
	}

	return &IssueResult{
		Success:       true,
		Message:       message,
		AlreadyIssued: alreadyIssued,
		Code:          code,
		PDFURL:        pdfURL,
		Matched:       matched,
		FullName:      fullName,
		Email:         email,
		EventName:     eventName,
	}, nil
}

// VerifyResult is the public verification outcome for a code.
type VerifyResult struct {
	Valid         bool       `json:"valid"`
	Message       string     `json:"message"`
	HolderName    string     `json:"holderName,omitempty"`
	EventSlug     string     `json:"eventSlug,omitempty"`
	IssuedAt      *time.Time `json:"issuedAt,omitempty"`
	Suggestion    string     `json:"suggestion,omitempty"`
	SuggestedCode string     `json:"suggestedCode,omitempty"`
}

// Verify looks a code up case-insensitively; on a miss it probes the
// confusable-character variants and suggests the closest stored code
// without exposing holder details.
func (s *CertificateService) Verify(code, locale string) (*VerifyResult, error) {
	locale = i18n.Normalize(locale)

	code = strings.TrimSpace(code)
	if code == "" {
		return &VerifyResult{Message: i18n.T(locale, "cert.code_missing")}, nil
	}

	cert, err := s.issuedRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if cert != nil {
		slug := fallbackEventName
		if cert.Event != nil {
			slug = cert.Event.Slug
		}
		issuedAt := cert.IssuedAt
		return &VerifyResult{
			Valid:      true,
			Message:    i18n.T(locale, "cert.valid"),
			HolderName: cert.FullName,
			EventSlug:  slug,
			IssuedAt:   &issuedAt,
		}, nil
	}

	variants := certificate.SimilarCodes(code)
	if len(variants) > 0 {
		similar, err := s.issuedRepo.FindFirstByCodes(variants)
		if err != nil {
			return nil, err
		}
		if similar != nil {
			return &VerifyResult{
				Message:       i18n.T(locale, "cert.not_found_exact"),
				Suggestion:    i18n.T(locale, "cert.suggestion"),
				SuggestedCode: similar.Code,
			}, nil
		}
	}

	return &VerifyResult{Message: i18n.T(locale, "cert.not_found")}, nil
}

// eventDisplayName resolves the printable event title for a locale,
// falling back to Portuguese, then any translation, then the slug.
func (s *CertificateService) eventDisplayName(event *models.Event, locale string) string {
	var fallback string
	for _, tr := range event.Translations {
		if tr.Locale == locale && tr.Title != "" {
			return tr.Title
		}
		if tr.Locale == i18n.LocalePT && tr.Title != "" {
			fallback = tr.Title
		}
	}
	if fallback != "" {
		return fallback
	}
	if len(event.Translations) > 0 && event.Translations[0].Title != "" {
		return event.Translations[0].Title
	}
	return event.Slug
}

func formatIssueDate(t time.Time, locale string) string {
	if locale == i18n.LocaleEN {
		return t.Format("01/02/2006")
	}
	return t.Format("02/01/2006")
}
