package models

import (
	"time"

	"gorm.io/gorm"
)

// EventCertificate certificate issuance config, one row per event.
type EventCertificate struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                      // primary key
	EventID         uint           `gorm:"uniqueIndex;not null" json:"event_id"`                      // parent event
	IsEnabled       bool           `gorm:"default:false;index" json:"is_enabled"`                     // issuance switch
	Keywords        StringArray    `gorm:"type:json;not null" json:"keywords"`                        // official keyword set
	RequiredCorrect int            `gorm:"not null;default:3" json:"required_correct"`                // minimum keyword matches
	Language        string         `gorm:"type:varchar(16);not null;default:'pt-BR'" json:"language"` // certificate language
	City            string         `gorm:"type:varchar(120)" json:"city"`                             // issuance city
	Country         string         `gorm:"type:varchar(120)" json:"country"`                          // issuance country
	Hours           int            `gorm:"default:0" json:"hours"`                                    // workload hours, 0 omits the line
	CreatedAt       time.Time      `json:"created_at"`                                                // created
	UpdatedAt       time.Time      `json:"updated_at"`                                                // updated
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                            // soft delete
}

// TableName sets the table name.
func (EventCertificate) TableName() string {
	return "event_certificates"
}
