package models

import (
	"time"

	"gorm.io/gorm"
)

// Publisher is a publishing house with owner/editor/journalist membership.
// IsApproved is a passive flag: no workflow reads or writes it.
type Publisher struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	IsApproved  bool           `json:"is_approved" gorm:"default:false"`
	OwnerID     *uint          `json:"owner_id"`
	Owner       *User          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Editors     []User `json:"editors,omitempty" gorm:"many2many:publisher_editors;"`
	Journalists []User `json:"journalists,omitempty" gorm:"many2many:publisher_journalists;"`

	Articles    []Article    `json:"articles,omitempty" gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
	Newsletters []Newsletter `json:"newsletters,omitempty" gorm:"foreignKey:PublisherID;constraint:OnDelete:SET NULL"`
}

type StaffKind string

const (
	StaffEditor     StaffKind = "editor"
	StaffJournalist StaffKind = "journalist"
)

func (k StaffKind) Role() UserRole {
	if k == StaffEditor {
		return RoleEditor
	}
	return RoleJournalist
}
