package models

// Permission codenames granted through role groups.
const (
	PermArticleCreate    = "article:create"
	PermArticleEdit      = "article:edit"
	PermArticleDelete    = "article:delete"
	PermArticleView      = "article:view"
	PermArticleApprove   = "article:approve"
	PermNewsletterCreate = "newsletter:create"
	PermNewsletterEdit   = "newsletter:edit"
	PermNewsletterDelete = "newsletter:delete"
	PermNewsletterView   = "newsletter:view"
)

// PermissionsFor maps a role to its fixed permission bundle. This is the only
// source of role grants; registration applies it once per user.
func PermissionsFor(role UserRole) []string {
	switch role {
	case RoleJournalist:
		return []string{
			PermArticleCreate, PermArticleEdit, PermArticleDelete, PermArticleView,
			PermNewsletterCreate, PermNewsletterEdit, PermNewsletterDelete, PermNewsletterView,
		}
	case RoleEditor:
		return []string{
			PermArticleEdit, PermArticleView, PermArticleApprove,
			PermNewsletterEdit, PermNewsletterView,
		}
	default:
		return nil
	}
}

// GroupNameFor returns the role group name, e.g. "Reader".
func GroupNameFor(role UserRole) string {
	switch role {
	case RoleReader:
		return "Reader"
	case RoleJournalist:
		return "Journalist"
	case RoleEditor:
		return "Editor"
	}
	return string(role)
}
