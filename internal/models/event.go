package models

import (
	"time"

	"gorm.io/gorm"
)

// Event conference edition or sub-event.
type Event struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                           // primary key
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`                               // unique URL identifier
	Status      string         `gorm:"type:varchar(24);index;not null;default:'draft'" json:"status"`  // draft/published/archived
	BannerImage string         `gorm:"type:varchar(500)" json:"banner_image"`                          // banner image path
	YoutubeURL  string         `gorm:"type:varchar(500)" json:"youtube_url,omitempty"`                 // live-transmission embed
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`                         // highlighted on home
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                              // listing order
	StartsAt    *time.Time     `gorm:"index" json:"starts_at"`                                         // event start
	EndsAt      *time.Time     `gorm:"index" json:"ends_at"`                                           // event end
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                        // created
	UpdatedAt   time.Time      `json:"updated_at"`                                                     // updated
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                 // soft delete

	Translations []EventTranslation `gorm:"foreignKey:EventID" json:"translations,omitempty"` // per-locale content
	Certificate  *EventCertificate  `gorm:"foreignKey:EventID" json:"certificate,omitempty"`  // certificate config
}

// TableName sets the table name.
func (Event) TableName() string {
	return "events"
}
