package repositories

import (
	"time"

	"news-portal-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	ListApproved(limit int) ([]models.Article, error)
	ListVisibleToReader(publisherIDs, journalistIDs []uint, limit int) ([]models.Article, error)
	ListByJournalist(journalistID uint) ([]models.Article, error)
	ListPendingForPublishers(publisherIDs []uint) ([]models.Article, error)
	ListRecentForPublishers(publisherIDs []uint, limit int) ([]models.Article, error)
	Approve(article *models.Article, editorID uint, at time.Time) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Journalist").
		Preload("Publisher").
		Preload("ApprovedBy").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) ListApproved(limit int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Preload("Journalist").Preload("Publisher").
		Where("is_approved = ?", true).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListVisibleToReader(publisherIDs, journalistIDs []uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Preload("Journalist").Preload("Publisher").
		Where("is_approved = ?", true).
		Where("publisher_id IN ? OR journalist_id IN ?", publisherIDs, journalistIDs).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListByJournalist(journalistID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Publisher").
		Where("journalist_id = ?", journalistID).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListPendingForPublishers(publisherIDs []uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Journalist").Preload("Publisher").
		Where("is_approved = ? AND publisher_id IN ?", false, publisherIDs).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListRecentForPublishers(publisherIDs []uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	query := r.db.Preload("Journalist").Preload("Publisher").
		Where("publisher_id IN ?", publisherIDs).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&articles).Error
	return articles, err
}

// Approve flips the article into its terminal state in a single update, so a
// committed row can never hold is_approved without approved_by/approved_at.
func (r *articleRepository) Approve(article *models.Article, editorID uint, at time.Time) error {
	err := r.db.Model(article).Updates(map[string]interface{}{
		"is_approved":    true,
		"approved_by_id": editorID,
		"approved_at":    at,
	}).Error
	if err != nil {
		return err
	}
	article.IsApproved = true
	article.ApprovedByID = &editorID
	article.ApprovedAt = &at
	return nil
}
