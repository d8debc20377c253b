package repositories

import (
	"news-portal-api/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *models.Publisher) error
	GetByID(id uint) (*models.Publisher, error)
	GetAll() ([]models.Publisher, error)
	GetByIDs(ids []uint) ([]models.Publisher, error)
	AddEditor(publisher *models.Publisher, user *models.User) error
	RemoveEditor(publisher *models.Publisher, user *models.User) error
	AddJournalist(publisher *models.Publisher, user *models.User) error
	RemoveJournalist(publisher *models.Publisher, user *models.User) error
	ManagedBy(userID uint) ([]models.Publisher, error)
	IsEditorMember(publisherID, userID uint) (bool, error)
	IsJournalistMember(publisherID, userID uint) (bool, error)
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *publisherRepository) GetByID(id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Preload("Owner").
		Preload("Editors").
		Preload("Journalists").
		First(&publisher, id).Error
	return &publisher, err
}

func (r *publisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Order("name asc").Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) GetByIDs(ids []uint) ([]models.Publisher, error) {
	var publishers []models.Publisher
	if len(ids) == 0 {
		return publishers, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) AddEditor(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Editors").Append(user)
}

func (r *publisherRepository) RemoveEditor(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Editors").Delete(user)
}

func (r *publisherRepository) AddJournalist(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Journalists").Append(user)
}

func (r *publisherRepository) RemoveJournalist(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Journalists").Delete(user)
}

// ManagedBy returns the distinct set of publishers the user owns or edits.
func (r *publisherRepository) ManagedBy(userID uint) ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Distinct("publishers.*").
		Joins("LEFT JOIN publisher_editors pe ON pe.publisher_id = publishers.id").
		Where("publishers.owner_id = ? OR pe.user_id = ?", userID, userID).
		Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) IsEditorMember(publisherID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Publisher{}).
		Joins("LEFT JOIN publisher_editors pe ON pe.publisher_id = publishers.id").
		Where("publishers.id = ?", publisherID).
		Where("publishers.owner_id = ? OR pe.user_id = ?", userID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *publisherRepository) IsJournalistMember(publisherID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("publisher_journalists").
		Where("publisher_id = ? AND user_id = ?", publisherID, userID).
		Count(&count).Error
	return count > 0, err
}
