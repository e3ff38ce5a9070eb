package models

import (
	"time"

	"gorm.io/gorm"
)

// IssuedCertificate one certificate per (event, email); re-issuance keeps
// the code and issue date and only refreshes the PDF URL.
type IssuedCertificate struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                          // primary key
	EventID          uint           `gorm:"uniqueIndex:idx_cert_event_email;not null" json:"event_id"`     // parent event
	Email            string         `gorm:"type:varchar(255);uniqueIndex:idx_cert_event_email;not null" json:"email"` // normalized email
	FullName         string         `gorm:"type:varchar(120);not null" json:"full_name"`                   // holder name as printed
	Code             string         `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"`             // verification code
	PDFURL           string         `gorm:"type:varchar(500)" json:"pdf_url"`                              // stored document URL
	KeywordsMatched  int            `gorm:"not null;default:0" json:"keywords_matched"`                    // matches at issuance
	KeywordsProvided StringArray    `gorm:"type:json" json:"keywords_provided"`                            // raw submitted keywords
	IssuedAt         time.Time      `gorm:"index;not null" json:"issued_at"`                               // first issuance time
	CreatedAt        time.Time      `json:"created_at"`                                                    // created
	UpdatedAt        time.Time      `json:"updated_at"`                                                    // updated
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                                // soft delete

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"` // parent event
}

// TableName sets the table name.
func (IssuedCertificate) TableName() string {
	return "issued_certificates"
}
