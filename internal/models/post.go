package models

import (
	"time"

	"gorm.io/gorm"
)

// Post news / announcement article.
type Post struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // primary key
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`        // unique identifier
	Type        string         `gorm:"not null;index" json:"type"`              // blog/notice
	TitleJSON   JSON           `gorm:"type:json;not null" json:"title"`         // multi-language title
	SummaryJSON JSON           `gorm:"type:json" json:"summary"`                // multi-language summary
	ContentJSON JSON           `gorm:"type:json" json:"content"`                // multi-language body
	Thumbnail   string         `json:"thumbnail"`                               // thumbnail image
	IsPublished bool           `gorm:"default:false;index" json:"is_published"` // published flag
	PublishedAt *time.Time     `gorm:"index" json:"published_at"`               // publish time
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                 // created
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // soft delete
}

// TableName sets the table name.
func (Post) TableName() string {
	return "posts"
}
