package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkSubmission submitted academic work / abstract.
type WorkSubmission struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                            // primary key
	EventID      uint           `gorm:"index;not null" json:"event_id"`                                  // target event
	AuthorName   string         `gorm:"type:varchar(120);not null" json:"author_name"`                   // main author
	AuthorEmail  string         `gorm:"type:varchar(255);index;not null" json:"author_email"`            // normalized email
	CoAuthors    StringArray    `gorm:"type:json" json:"co_authors"`                                     // co-author names
	Title        string         `gorm:"type:varchar(300);not null" json:"title"`                         // work title
	Abstract     string         `gorm:"type:text;not null" json:"abstract"`                              // abstract text
	ThematicArea string         `gorm:"type:varchar(160);index" json:"thematic_area"`                    // thematic track
	FileURL      string         `gorm:"type:varchar(500)" json:"file_url,omitempty"`                     // stored document URL
	Locale       string         `gorm:"type:varchar(16)" json:"locale,omitempty"`                        // request locale for emails
	Status       string         `gorm:"type:varchar(24);index;not null;default:'received'" json:"status"` // received/under_review/approved/rejected
	ReviewNote   string         `gorm:"type:text" json:"review_note,omitempty"`                          // reviewer note
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                         // created
	UpdatedAt    time.Time      `json:"updated_at"`                                                      // updated
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                                  // soft delete
}

// TableName sets the table name.
func (WorkSubmission) TableName() string {
	return "work_submissions"
}
