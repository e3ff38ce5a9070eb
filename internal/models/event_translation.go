package models

import (
	"time"

	"gorm.io/gorm"
)

// EventTranslation per-locale event content, one row per (event, locale).
type EventTranslation struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                                   // primary key
	EventID     uint           `gorm:"uniqueIndex:idx_event_locale;not null" json:"event_id"`                  // parent event
	Locale      string         `gorm:"type:varchar(16);uniqueIndex:idx_event_locale;not null" json:"locale"`   // pt-BR/en-US/es-ES/tr-TR
	Title       string         `gorm:"type:varchar(300);not null" json:"title"`                                // localized title
	Description string         `gorm:"type:text" json:"description"`                                           // localized description
	CreatedAt   time.Time      `json:"created_at"`                                                             // created
	UpdatedAt   time.Time      `json:"updated_at"`                                                             // updated
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                         // soft delete
}

// TableName sets the table name.
func (EventTranslation) TableName() string {
	return "event_translations"
}
