package repositories

import (
	"news-portal-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByUsernameAndRole(username string, role models.UserRole) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ListByRole(role models.UserRole) ([]models.User, error)
	ListByIDsAndRole(ids []uint, role models.UserRole) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("SubscribedPublishers").
		Preload("SubscribedJournalists").
		First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByUsernameAndRole(username string, role models.UserRole) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? AND role = ?", username, role).First(&user).Error
	return &user, err
}

func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ListByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("username asc").Find(&users).Error
	return users, err
}

func (r *userRepository) ListByIDsAndRole(ids []uint, role models.UserRole) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ? AND role = ?", ids, role).Find(&users).Error
	return users, err
}
