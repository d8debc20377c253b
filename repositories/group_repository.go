package repositories

import (
	"news-portal-api/models"

	"gorm.io/gorm"
)

type GroupRepository interface {
	AssignRoleBundle(user *models.User, role models.UserRole) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// AssignRoleBundle puts the user into their role group and attaches the fixed
// permission bundle to that group. Safe to retry: groups and permissions are
// get-or-created and association appends ignore existing links.
func (r *groupRepository) AssignRoleBundle(user *models.User, role models.UserRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.Where(models.Group{Name: models.GroupNameFor(role)}).
			FirstOrCreate(&group).Error; err != nil {
			return err
		}

		for _, codename := range models.PermissionsFor(role) {
			var perm models.Permission
			if err := tx.Where(models.Permission{Codename: codename}).
				FirstOrCreate(&perm).Error; err != nil {
				return err
			}
			if err := tx.Model(&group).Association("Permissions").Append(&perm); err != nil {
				return err
			}
		}

		return tx.Model(user).Association("Groups").Append(&group)
	})
}
