package models

import (
	"time"

	"gorm.io/gorm"
)

// Banner home-page carousel slide.
type Banner struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                      // primary key
	Name         string         `gorm:"type:varchar(120);not null;index" json:"name"`              // back-office label
	Position     string         `gorm:"type:varchar(60);not null;index" json:"position"`           // placement slot
	TitleJSON    JSON           `gorm:"type:json" json:"title"`                                    // multi-language title
	SubtitleJSON JSON           `gorm:"type:json" json:"subtitle"`                                 // multi-language subtitle
	Image        string         `gorm:"type:varchar(500);not null" json:"image"`                   // main image
	MobileImage  string         `gorm:"type:varchar(500)" json:"mobile_image"`                     // mobile image
	LinkType     string         `gorm:"type:varchar(20);not null;default:'none'" json:"link_type"` // none/url/event
	LinkValue    string         `gorm:"type:varchar(1000)" json:"link_value"`                      // link target
	OpenInNewTab bool           `gorm:"default:false" json:"open_in_new_tab"`                      // open in new tab
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`                       // enabled flag
	StartAt      *time.Time     `gorm:"index" json:"start_at"`                                     // activation time
	EndAt        *time.Time     `gorm:"index" json:"end_at"`                                       // expiry time
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`                         // ordering
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                   // created
	UpdatedAt    time.Time      `json:"updated_at"`                                                // updated
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                            // soft delete
}

// TableName sets the table name.
func (Banner) TableName() string {
	return "banners"
}
