package repositories

import (
	"news-portal-api/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *models.Newsletter) error
	GetByID(id uint) (*models.Newsletter, error)
	Update(newsletter *models.Newsletter) error
	Delete(id uint) error
	ListPublished(limit int) ([]models.Newsletter, error)
	ListVisibleToReader(publisherIDs, journalistIDs []uint, limit int) ([]models.Newsletter, error)
	ListByCreator(creatorID uint) ([]models.Newsletter, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *models.Newsletter) error {
	return r.db.Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.Preload("CreatedBy").
		Preload("Publisher").
		First(&newsletter, id).Error
	return &newsletter, err
}

func (r *newsletterRepository) Update(newsletter *models.Newsletter) error {
	return r.db.Save(newsletter).Error
}

func (r *newsletterRepository) Delete(id uint) error {
	return r.db.Delete(&models.Newsletter{}, id).Error
}

func (r *newsletterRepository) ListPublished(limit int) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	query := r.db.Preload("CreatedBy").Preload("Publisher").
		Where("is_published = ?", true).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) ListVisibleToReader(publisherIDs, journalistIDs []uint, limit int) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	query := r.db.Preload("CreatedBy").Preload("Publisher").
		Where("is_published = ?", true).
		Where("publisher_id IN ? OR created_by_id IN ?", publisherIDs, journalistIDs).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) ListByCreator(creatorID uint) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Publisher").
		Where("created_by_id = ?", creatorID).
		Order("created_at desc").
		Find(&newsletters).Error
	return newsletters, err
}
