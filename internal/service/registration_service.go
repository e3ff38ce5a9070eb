package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/civeni/civeni-api/internal/config"
	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/payment/stripe"
	"github.com/civeni/civeni-api/internal/queue"
	"github.com/civeni/civeni-api/internal/repository"

	"github.com/shopspring/decimal"
)

// RegistrationService handles attendee registration and its payment flow.
type RegistrationService struct {
	cfg          *config.Config
	stripeCfg    *stripe.Config
	eventRepo    repository.EventRepository
	categoryRepo repository.RegistrationCategoryRepository
	regRepo      repository.RegistrationRepository
	queueClient  *queue.Client
}

// NewRegistrationService creates a RegistrationService.
func NewRegistrationService(
	cfg *config.Config,
	eventRepo repository.EventRepository,
	categoryRepo repository.RegistrationCategoryRepository,
	regRepo repository.RegistrationRepository,
	queueClient *queue.Client,
) *RegistrationService {
	return &RegistrationService{
		cfg: cfg,
		stripeCfg: stripe.NewConfig(stripe.Config{
			SecretKey:               cfg.Stripe.SecretKey,
			PublishableKey:          cfg.Stripe.PublishableKey,
			WebhookSecret:           cfg.Stripe.WebhookSecret,
			SuccessURL:              cfg.Stripe.SuccessURL,
			CancelURL:               cfg.Stripe.CancelURL,
			APIBaseURL:              cfg.Stripe.APIBaseURL,
			WebhookToleranceSeconds: cfg.Stripe.WebhookToleranceSeconds,
			PaymentMethodTypes:      cfg.Stripe.PaymentMethodTypes,
		}),
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		regRepo:      regRepo,
		queueClient:  queueClient,
	}
}

// ListPublicCategories returns the active tiers of a published event.
func (s *RegistrationService) ListPublicCategories(eventID uint) ([]models.RegistrationCategory, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != constants.EventStatusPublished {
		return nil, ErrNotFound
	}
	return s.categoryRepo.ListByEvent(eventID, true)
}

// RegisterInput is one registration request.
type RegisterInput struct {
	EventID    uint   `json:"event_id"`
	CategoryID uint   `json:"category_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Locale     string `json:"-"`
	ClientIP   string `json:"-"`
}

// RegisterResult is the outcome of a registration request. Paid tiers get a
// Stripe Checkout URL; free tiers are confirmed immediately.
type RegisterResult struct {
	Registration    *models.Registration `json:"registration"`
	RequiresPayment bool                 `json:"requires_payment"`
	CheckoutURL     string               `json:"checkout_url,omitempty"`
	Message         string               `json:"message"`
}

// Register validates the request and creates a registration. Free tiers are
// confirmed on the spot; paid tiers return a Checkout URL and stay pending
// until the payment settles.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	locale := i18n.Normalize(input.Locale)

	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.Status != constants.EventStatusPublished {
		return nil, ErrNotFound
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.EventID != event.ID {
		return nil, ErrNotFound
	}
	if !category.IsActive {
		return nil, ErrCategoryInactive
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, ErrInvalidName
	}

	free := category.IsFree || category.Price.IsZero()

	registration := &models.Registration{
		RegistrationNo: generateRegistrationNo(),
		EventID:        event.ID,
		CategoryID:     category.ID,
		Email:          email,
		FullName:       fullName,
		Phone:          strings.TrimSpace(input.Phone),
		Locale:         locale,
		Status:         constants.RegistrationStatusPending,
		Amount:         category.Price,
		Currency:       category.Currency,
		ClientIP:       input.ClientIP,
	}
	if err := s.regRepo.Create(registration); err != nil {
		return nil, err
	}

	if free {
		if err := s.confirmRegistration(registration); err != nil {
			return nil, err
		}
		return &RegisterResult{
			Registration: registration,
			Message:      i18n.T(locale, "msg.registration_confirmed"),
		}, nil
	}

	if strings.TrimSpace(s.cfg.Stripe.SecretKey) == "" {
		return nil, ErrPaymentNotEnabled
	}

	created, err := stripe.CreatePayment(ctx, s.stripeCfg, stripe.CreateInput{
		RegistrationNo: registration.RegistrationNo,
		RegistrationID: registration.ID,
		Amount:         registration.Amount.String(),
		Currency:       registration.Currency,
		Description:    fmt.Sprintf("%s - %s", s.cfg.Site.Name, registration.RegistrationNo),
		CustomerEmail:  email,
		SuccessURL:     s.cfg.Stripe.SuccessURL,
		CancelURL:      s.cfg.Stripe.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	registration.StripeSessionID = created.SessionID
	if err := s.regRepo.Update(registration); err != nil {
		return nil, err
	}

	return &RegisterResult{
		Registration:    registration,
		RequiresPayment: true,
		CheckoutURL:     created.URL,
		Message:         i18n.T(locale, "msg.registration_pending"),
	}, nil
}

// VerifyBySession re-checks a checkout session against Stripe and confirms
// the registration when the payment settled. Safe to call repeatedly.
func (s *RegistrationService) VerifyBySession(ctx context.Context, sessionID string) (*models.Registration, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrNotFound
	}
	registration, err := s.regRepo.GetByStripeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}
	if registration.Status == constants.RegistrationStatusConfirmed {
		return registration, nil
	}

	result, err := stripe.QueryPayment(ctx, s.stripeCfg, sessionID)
	if err != nil {
		return nil, err
	}
	if result.Status == constants.PaymentStatusSuccess {
		if err := s.confirmRegistration(registration); err != nil {
			return nil, err
		}
	}
	return registration, nil
}

// HandleWebhook verifies a Stripe webhook and applies the payment outcome.
func (s *RegistrationService) HandleWebhook(headers map[string]string, body []byte) (*stripe.WebhookResult, error) {
	result, err := stripe.VerifyAndParseWebhook(s.stripeCfg, headers, body, time.Now())
	if err != nil {
		return nil, err
	}

	registration, err := s.resolveWebhookRegistration(result)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		// Unrelated event type or a session this instance never created.
		logger.Infow("stripe_webhook_unmatched", "event_type", result.EventType, "session_id", result.SessionID)
		return result, nil
	}

	switch result.Status {
	case constants.PaymentStatusSuccess:
		if err := s.confirmRegistration(registration); err != nil {
			return nil, err
		}
	case constants.PaymentStatusExpired, constants.PaymentStatusFailed:
		if registration.Status == constants.RegistrationStatusPending {
			registration.Status = constants.RegistrationStatusCancelled
			if err := s.regRepo.Update(registration); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Get returns one registration for the back office.
func (s *RegistrationService) Get(id uint) (*models.Registration, error) {
	registration, err := s.regRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}
	return registration, nil
}

// GetByNumber returns one registration by its public reference.
func (s *RegistrationService) GetByNumber(no string) (*models.Registration, error) {
	registration, err := s.regRepo.GetByRegistrationNo(strings.TrimSpace(no))
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}
	return registration, nil
}

// ListAdmin lists registrations for the back office.
func (s *RegistrationService) ListAdmin(filter repository.RegistrationListFilter) ([]models.Registration, int64, error) {
	return s.regRepo.List(filter)
}

// UpdateStatus sets a registration status from the back office.
func (s *RegistrationService) UpdateStatus(id uint, status string) (*models.Registration, error) {
	switch status {
	case constants.RegistrationStatusPending, constants.RegistrationStatusConfirmed, constants.RegistrationStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	registration, err := s.regRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, ErrNotFound
	}
	if status == constants.RegistrationStatusConfirmed {
		if err := s.confirmRegistration(registration); err != nil {
			return nil, err
		}
		return registration, nil
	}
	registration.Status = status
	if err := s.regRepo.Update(registration); err != nil {
		return nil, err
	}
	return registration, nil
}

func (s *RegistrationService) resolveWebhookRegistration(result *stripe.WebhookResult) (*models.Registration, error) {
	if result.RegistrationID != 0 {
		registration, err := s.regRepo.GetByID(result.RegistrationID)
		if err != nil {
			return nil, err
		}
		if registration != nil {
			return registration, nil
		}
	}
	if result.SessionID != "" {
		return s.regRepo.GetByStripeSessionID(result.SessionID)
	}
	return nil, nil
}

func (s *RegistrationService) confirmRegistration(registration *models.Registration) error {
	if registration.Status == constants.RegistrationStatusConfirmed {
		return nil
	}
	now := time.Now()
	registration.Status = constants.RegistrationStatusConfirmed
	registration.ConfirmedAt = &now
	if err := s.regRepo.Update(registration); err != nil {
		return err
	}
	if err := s.queueClient.EnqueueRegistrationConfirmation(queue.RegistrationConfirmationPayload{RegistrationID: registration.ID}); err != nil {
		logger.Warnw("registration_email_enqueue_failed", "registration_id", registration.ID, "error", err)
	}
	return nil
}

// CategoryInput is the back-office payload for a registration tier.
type CategoryInput struct {
	TitleJSON     models.JSON `json:"title"`
	Price         string      `json:"price"`
	Currency      string      `json:"currency"`
	IsFree        *bool       `json:"is_free"`
	StripePriceID string      `json:"stripe_price_id"`
	IsActive      *bool       `json:"is_active"`
	SortOrder     *int        `json:"sort_order"`
}

// ListCategoriesAdmin lists all tiers of an event for the back office.
func (s *RegistrationService) ListCategoriesAdmin(eventID uint) ([]models.RegistrationCategory, error) {
	return s.categoryRepo.ListByEvent(eventID, false)
}

// CreateCategory creates a registration tier under an event.
func (s *RegistrationService) CreateCategory(eventID uint, input CategoryInput) (*models.RegistrationCategory, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	category := &models.RegistrationCategory{
		EventID:  eventID,
		IsActive: true,
	}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates a registration tier.
func (s *RegistrationService) UpdateCategory(id uint, input CategoryInput) (*models.RegistrationCategory, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	if err := applyCategoryInput(category, input); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a registration tier.
func (s *RegistrationService) DeleteCategory(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.categoryRepo.Delete(id)
}

func applyCategoryInput(category *models.RegistrationCategory, input CategoryInput) error {
	if len(input.TitleJSON) > 0 {
		category.TitleJSON = input.TitleJSON
	}
	if strings.TrimSpace(input.Price) != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
		if err != nil || price.IsNegative() {
			return ErrInvalidPrice
		}
		category.Price = models.NewMoneyFromDecimal(price)
	}
	if currency := strings.ToUpper(strings.TrimSpace(input.Currency)); currency != "" {
		category.Currency = currency
	}
	if input.IsFree != nil {
		category.IsFree = *input.IsFree
	}
	if strings.TrimSpace(input.StripePriceID) != "" {
		category.StripePriceID = strings.TrimSpace(input.StripePriceID)
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	return nil
}

func generateRegistrationNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("CIV%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteByte('0')
			continue
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String()
}
