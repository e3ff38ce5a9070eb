package models

import "time"

// CertificateAttempt append-only issuance attempt, drives the rate limit.
type CertificateAttempt struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                       // primary key
	EventID   uint      `gorm:"index;not null" json:"event_id"`                             // target event
	Email     string    `gorm:"type:varchar(255);index:idx_attempt_email;not null" json:"email"` // normalized email
	ClientIP  string    `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                // requester IP
	Matched   int       `gorm:"not null;default:0" json:"matched"`                          // keywords matched
	Succeeded bool      `gorm:"not null;default:false;index" json:"succeeded"`              // passed the keyword gate
	CreatedAt time.Time `gorm:"index:idx_attempt_email" json:"created_at"`                  // attempt time
}

// TableName sets the table name.
func (CertificateAttempt) TableName() string {
	return "certificate_attempts"
}
