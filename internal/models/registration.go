package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration attendee registration, optionally paid through Stripe.
type Registration struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                           // primary key
	RegistrationNo  string         `gorm:"uniqueIndex;not null" json:"registration_no"`                    // public reference number
	EventID         uint           `gorm:"index;not null" json:"event_id"`                                 // target event
	CategoryID      uint           `gorm:"index;not null" json:"category_id"`                              // chosen tier
	Email           string         `gorm:"type:varchar(255);index;not null" json:"email"`                  // normalized email
	FullName        string         `gorm:"type:varchar(120);not null" json:"full_name"`                    // attendee name
	Phone           string         `gorm:"type:varchar(40)" json:"phone,omitempty"`                        // contact phone
	Locale          string         `gorm:"type:varchar(16)" json:"locale,omitempty"`                       // request locale for emails
	Status          string         `gorm:"type:varchar(24);index;not null;default:'pending'" json:"status"` // pending/confirmed/cancelled
	Amount          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`            // charged amount
	Currency        string         `gorm:"type:varchar(16);not null;default:'BRL'" json:"currency"`        // currency code
	StripeSessionID string         `gorm:"type:varchar(160);index" json:"-"`                               // checkout session id
	ClientIP        string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                    // requester IP
	ConfirmedAt     *time.Time     `gorm:"index" json:"confirmed_at"`                                      // payment/confirmation time
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                        // created
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                        // updated
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                                 // soft delete

	Category *RegistrationCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // chosen tier
	Event    *Event                `gorm:"foreignKey:EventID" json:"event,omitempty"`       // target event
}

// TableName sets the table name.
func (Registration) TableName() string {
	return "registrations"
}
