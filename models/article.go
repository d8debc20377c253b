package models

import (
	"time"

	"gorm.io/gorm"
)

// Article lifecycle: created by a journalist, pending while a publisher is
// attached, approved exactly once by a member editor of that publisher.
// Independent articles (no publisher) are approved from the start.
type Article struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	Title        string         `json:"title" gorm:"not null"`
	Content      string         `json:"content" gorm:"type:text"`
	JournalistID uint           `json:"journalist_id" gorm:"not null"`
	Journalist   User           `json:"journalist" gorm:"foreignKey:JournalistID;constraint:OnDelete:CASCADE"`
	PublisherID  *uint          `json:"publisher_id"`
	Publisher    *Publisher     `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	IsApproved   bool           `json:"is_approved" gorm:"default:false"`
	ApprovedByID *uint          `json:"approved_by_id"`
	ApprovedBy   *User          `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID;constraint:OnDelete:SET NULL"`
	ApprovedAt   *time.Time     `json:"approved_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// RequiresApproval reports whether the article goes through editorial review.
func (a *Article) RequiresApproval() bool { return a.PublisherID != nil }
