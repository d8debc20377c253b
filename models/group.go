package models

import "time"

// Group is a role-named bucket carrying a permission bundle. Users join the
// group matching their role at registration time.
type Group struct {
	ID          uint         `json:"id" gorm:"primarykey"`
	Name        string       `json:"name" gorm:"uniqueIndex;not null"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:group_permissions;"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Permission struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Codename string `json:"codename" gorm:"uniqueIndex;not null"`
}
