package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/civeni/civeni-api/internal/i18n"
	"github.com/civeni/civeni-api/internal/logger"
	"github.com/civeni/civeni-api/internal/models"
	"github.com/civeni/civeni-api/internal/provider"
	"github.com/civeni/civeni-api/internal/queue"
	"github.com/civeni/civeni-api/internal/service"

	"github.com/hibiken/asynq"
)

// fallbackEmailEventName labels emails when the event row is gone.
const fallbackEmailEventName = "Evento CIVENI"

// Consumer processes queued email tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCertificateEmail, c.handleCertificateEmail)
	mux.HandleFunc(queue.TaskRegistrationConfirmation, c.handleRegistrationConfirmation)
	mux.HandleFunc(queue.TaskWorkReceivedConfirmation, c.handleWorkReceived)
}

func (c *Consumer) handleCertificateEmail(_ context.Context, task *asynq.Task) error {
	var payload queue.CertificateEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_certificate_email_unmarshal_failed", "error", err)
		return err
	}
	cert, err := c.IssuedCertificateRepo.GetByID(payload.CertificateID)
	if err != nil {
		logger.Errorw("worker_certificate_email_load_failed", "certificate_id", payload.CertificateID, "error", err)
		return err
	}
	if cert == nil {
		logger.Debugw("worker_certificate_email_skip_missing", "certificate_id", payload.CertificateID)
		return nil
	}

	locale := certificateEmailLocale(c, cert.EventID)
	err = c.EmailService.SendCertificateIssued(cert.Email, service.CertificateEmailInput{
		FullName:  cert.FullName,
		EventName: eventTitleForEmail(cert.Event, locale),
		Code:      cert.Code,
		PDFURL:    cert.PDFURL,
	}, locale)
	if skipEmailError(err) {
		logger.Debugw("worker_certificate_email_skipped", "certificate_id", cert.ID, "reason", err)
		return nil
	}
	if err != nil {
		logger.Errorw("worker_certificate_email_send_failed", "certificate_id", cert.ID, "error", err)
		return err
	}
	logger.Infow("worker_certificate_email_sent", "certificate_id", cert.ID, "code", cert.Code)
	return nil
}

func (c *Consumer) handleRegistrationConfirmation(_ context.Context, task *asynq.Task) error {
	var payload queue.RegistrationConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_registration_email_unmarshal_failed", "error", err)
		return err
	}
	registration, err := c.RegistrationRepo.GetByID(payload.RegistrationID)
	if err != nil {
		logger.Errorw("worker_registration_email_load_failed", "registration_id", payload.RegistrationID, "error", err)
		return err
	}
	if registration == nil {
		logger.Debugw("worker_registration_email_skip_missing", "registration_id", payload.RegistrationID)
		return nil
	}

	err = c.EmailService.SendRegistrationConfirmed(registration.Email, service.RegistrationEmailInput{
		FullName:       registration.FullName,
		RegistrationNo: registration.RegistrationNo,
		EventName:      eventTitleForEmail(registration.Event, registration.Locale),
	}, registration.Locale)
	if skipEmailError(err) {
		logger.Debugw("worker_registration_email_skipped", "registration_id", registration.ID, "reason", err)
		return nil
	}
	if err != nil {
		logger.Errorw("worker_registration_email_send_failed", "registration_id", registration.ID, "error", err)
		return err
	}
	logger.Infow("worker_registration_email_sent", "registration_id", registration.ID, "registration_no", registration.RegistrationNo)
	return nil
}

func (c *Consumer) handleWorkReceived(_ context.Context, task *asynq.Task) error {
	var payload queue.WorkReceivedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_work_email_unmarshal_failed", "error", err)
		return err
	}
	work, err := c.WorkRepo.GetByID(payload.WorkID)
	if err != nil {
		logger.Errorw("worker_work_email_load_failed", "work_id", payload.WorkID, "error", err)
		return err
	}
	if work == nil {
		logger.Debugw("worker_work_email_skip_missing", "work_id", payload.WorkID)
		return nil
	}

	err = c.EmailService.SendWorkReceived(work.AuthorEmail, service.WorkEmailInput{
		AuthorName: work.AuthorName,
		Title:      work.Title,
	}, work.Locale)
	if skipEmailError(err) {
		logger.Debugw("worker_work_email_skipped", "work_id", work.ID, "reason", err)
		return nil
	}
	if err != nil {
		logger.Errorw("worker_work_email_send_failed", "work_id", work.ID, "error", err)
		return err
	}
	logger.Infow("worker_work_email_sent", "work_id", work.ID)
	return nil
}

// skipEmailError reports errors that should drop the task instead of
// retrying: mail is disabled, misconfigured, or the recipient is bad.
func skipEmailError(err error) bool {
	return errors.Is(err, service.ErrEmailServiceDisabled) ||
		errors.Is(err, service.ErrEmailServiceNotConfigured) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrEmailRecipientRejected)
}

// certificateEmailLocale uses the certificate config language so the email
// matches the document it links to.
func certificateEmailLocale(c *Consumer, eventID uint) string {
	cfg, err := c.EventCertificateRepo.GetByEventID(eventID)
	if err != nil || cfg == nil {
		return i18n.Normalize("")
	}
	return i18n.Normalize(cfg.Language)
}

// eventTitleForEmail picks the event title for the given locale, falling
// back to Portuguese, then any translation, then the slug.
func eventTitleForEmail(event *models.Event, locale string) string {
	if event == nil {
		return fallbackEmailEventName
	}
	normalized := i18n.Normalize(locale)
	var ptTitle string
	for _, tr := range event.Translations {
		title := strings.TrimSpace(tr.Title)
		if title == "" {
			continue
		}
		if tr.Locale == normalized {
			return title
		}
		if tr.Locale == "pt-BR" && ptTitle == "" {
			ptTitle = title
		}
	}
	if ptTitle != "" {
		return ptTitle
	}
	for _, tr := range event.Translations {
		if title := strings.TrimSpace(tr.Title); title != "" {
			return title
		}
	}
	if event.Slug != "" {
		return event.Slug
	}
	return fallbackEmailEventName
}
