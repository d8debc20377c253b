package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleReader     UserRole = "reader"
	RoleJournalist UserRole = "journalist"
	RoleEditor     UserRole = "editor"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleReader, RoleJournalist, RoleEditor:
		return true
	}
	return false
}

// User carries exactly one role, fixed at creation. Only readers hold
// subscription sets; registration clears them for any other role.
type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'reader'"`
	Bio       string         `json:"bio" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	SubscribedPublishers  []Publisher `json:"subscribed_publishers,omitempty" gorm:"many2many:user_subscribed_publishers;"`
	SubscribedJournalists []User      `json:"subscribed_journalists,omitempty" gorm:"many2many:user_subscribed_journalists;joinForeignKey:reader_id;joinReferences:journalist_id"`

	Groups []Group `json:"-" gorm:"many2many:user_groups;"`
}

// CanAuthorContent reports whether the user may create articles and newsletters.
func (u *User) CanAuthorContent() bool { return u.Role == RoleJournalist }

// CanApprove reports whether the user may approve publisher-linked articles.
func (u *User) CanApprove() bool { return u.Role == RoleEditor }

// CanSubscribe reports whether the user may hold subscriptions.
func (u *User) CanSubscribe() bool { return u.Role == RoleReader }
