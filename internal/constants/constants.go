package constants

// Event publication status
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusArchived  = "archived"
)

// Registration status
const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"
)

// Work submission status
const (
	WorkStatusReceived    = "received"
	WorkStatusUnderReview = "under_review"
	WorkStatusApproved    = "approved"
	WorkStatusRejected    = "rejected"
)

// Post types
const (
	PostTypeBlog   = "blog"
	PostTypeNotice = "notice"
)

// Banner placement slots
const (
	BannerPositionHomeHero = "home_hero"
)

// Banner link types
const (
	BannerLinkTypeNone  = "none"
	BannerLinkTypeURL   = "url"
	BannerLinkTypeEvent = "event"
)

// SupportedLocales lists the site locales in display order.
var SupportedLocales = []string{"pt-BR", "en-US", "es-ES", "tr-TR"}

// Certificate issuance policy
const (
	// CertificateCodeLength is the length of the public verification code.
	CertificateCodeLength = 10
	// CertificateCodeAlphabet mirrors the original issuance alphabet. It
	// drops 0/O/1/l/o but still contains confusable pairs (5/S, 6/G, B/8);
	// verification compensates with substitution suggestions.
	CertificateCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"
	// CertificateKeywordCount is the number of keywords a participant submits.
	CertificateKeywordCount = 3
	// CertificateAttemptWindowMinutes is the rolling rate-limit window.
	CertificateAttemptWindowMinutes = 60
	// CertificateAttemptMax is the attempt cap per email inside the window.
	CertificateAttemptMax = 5
	// CertificateNameMaxLength caps the holder name stored and printed.
	CertificateNameMaxLength = 50
	// CertificateNameMinLength rejects one-character holder names.
	CertificateNameMinLength = 2
)

// Storage buckets (directories under the public upload root)
const (
	BucketCertificates = "certificates"
	BucketWorks        = "works"
	BucketUploads      = "uploads"
)

// Queue names
const (
	QueueDefault = "default"
)

// Async task types
const (
	TaskCertificateEmail          = "email:certificate_issued"
	TaskRegistrationConfirmation  = "email:registration_confirmed"
	TaskWorkReceivedConfirmation  = "email:work_received"
)

// Payment status (normalized across gateway responses)
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

// Built-in admin roles
const (
	RoleAdminRoot = "admin_root"
	RoleEditor    = "editor"
	RoleFinance   = "finance"
)
