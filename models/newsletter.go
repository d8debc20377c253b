package models

import (
	"time"

	"gorm.io/gorm"
)

// Newsletter has no publish workflow: IsPublished stays false unless flipped
// directly in the store, so reader feeds never include newsletters.
type Newsletter struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title" gorm:"not null"`
	Content     string         `json:"content" gorm:"type:text"`
	CreatedByID uint           `json:"created_by_id" gorm:"not null"`
	CreatedBy   User           `json:"created_by" gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	PublisherID *uint          `json:"publisher_id"`
	Publisher   *Publisher     `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	IsPublished bool           `json:"is_published" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
