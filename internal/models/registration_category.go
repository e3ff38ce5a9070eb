package models

import (
	"time"

	"gorm.io/gorm"
)

// RegistrationCategory registration tier for an event.
type RegistrationCategory struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                    // primary key
	EventID       uint           `gorm:"index;not null" json:"event_id"`                          // parent event
	TitleJSON     JSON           `gorm:"type:json;not null" json:"title"`                         // multi-language title
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`      // price, 0 for free tiers
	Currency      string         `gorm:"type:varchar(16);not null;default:'BRL'" json:"currency"` // currency code
	IsFree        bool           `gorm:"default:false;index" json:"is_free"`                      // skip payment entirely
	StripePriceID string         `gorm:"type:varchar(120)" json:"stripe_price_id,omitempty"`      // optional pre-created price
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                     // open for registration
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                       // listing order
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                 // created
	UpdatedAt     time.Time      `json:"updated_at"`                                              // updated
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                          // soft delete
}

// TableName sets the table name.
func (RegistrationCategory) TableName() string {
	return "registration_categories"
}
