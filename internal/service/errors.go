package service

import "errors"

// Sentinel errors shared across services. Handlers translate these into
// localized API responses.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAdminProtected     = errors.New("protected admin account")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")

	ErrEventNotPublished        = errors.New("event not published")
	ErrInvalidName              = errors.New("invalid name")
	ErrSlugExists               = errors.New("slug already exists")
	ErrInvalidTranslation       = errors.New("invalid translation")
	ErrCertificateConfigInvalid = errors.New("invalid certificate configuration")
	ErrInvalidPostType          = errors.New("invalid post type")
	ErrInvalidBanner            = errors.New("invalid banner")
	ErrFinanceRangeInvalid      = errors.New("invalid finance range")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrCategoryInactive         = errors.New("registration category inactive")
	ErrInvalidPrice             = errors.New("invalid price")
	ErrPaymentNotEnabled        = errors.New("payment provider not configured")
	ErrWebhookInvalid           = errors.New("webhook payload invalid")
)
