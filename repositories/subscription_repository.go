package repositories

import (
	"news-portal-api/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	ReplaceForReader(reader *models.User, publishers []models.Publisher, journalists []models.User) error
	ListForReader(readerID uint) ([]models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// ReplaceForReader swaps out the reader's entire subscription state in one
// transaction: both many2many sets on the user and the mirrored join rows.
func (r *subscriptionRepository) ReplaceForReader(reader *models.User, publishers []models.Publisher, journalists []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(reader).Association("SubscribedPublishers").Replace(publishers); err != nil {
			return err
		}
		if err := tx.Model(reader).Association("SubscribedJournalists").Replace(journalists); err != nil {
			return err
		}

		if err := tx.Where("reader_id = ?", reader.ID).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}

		var rows []models.Subscription
		for i := range publishers {
			rows = append(rows, models.Subscription{ReaderID: reader.ID, PublisherID: &publishers[i].ID})
		}
		for i := range journalists {
			rows = append(rows, models.Subscription{ReaderID: reader.ID, JournalistID: &journalists[i].ID})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *subscriptionRepository) ListForReader(readerID uint) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Preload("Publisher").Preload("Journalist").
		Where("reader_id = ?", readerID).
		Order("created_at asc").
		Find(&subscriptions).Error
	return subscriptions, err
}
