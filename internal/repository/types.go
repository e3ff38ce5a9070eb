package repository

import "time"

// EventListFilter filters the event list.
type EventListFilter struct {
	Page          int
	PageSize      int
	Status        string
	Search        string
	OnlyPublished bool
	OnlyFeatured  bool
	OrderBy       string
}

// PostListFilter filters the post list.
type PostListFilter struct {
	Page          int
	PageSize      int
	Type          string
	Search        string
	OnlyPublished bool
	OrderBy       string
}

// BannerListFilter filters the banner list.
type BannerListFilter struct {
	Page      int
	PageSize  int
	Position  string
	Search    string
	IsActive  *bool
	OrderBy   string
	OnlyValid bool
}

// IssuedCertificateListFilter filters the issued-certificate list.
type IssuedCertificateListFilter struct {
	Page        int
	PageSize    int
	EventID     uint
	Email       string
	Code        string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CertificateAttemptListFilter filters the attempt list.
type CertificateAttemptListFilter struct {
	Page        int
	PageSize    int
	EventID     uint
	Email       string
	Succeeded   *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// RegistrationListFilter filters the registration list.
type RegistrationListFilter struct {
	Page           int
	PageSize       int
	EventID        uint
	CategoryID     uint
	Status         string
	Email          string
	RegistrationNo string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
}

// WorkListFilter filters the work-submission list.
type WorkListFilter struct {
	Page         int
	PageSize     int
	EventID      uint
	Status       string
	ThematicArea string
	Search       string
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}
