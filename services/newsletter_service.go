package services

import (
	"errors"

	"news-portal-api/models"
	"news-portal-api/repositories"

	"gorm.io/gorm"
)

type NewsletterService interface {
	Create(actorID uint, req models.CreateNewsletterRequest) (*models.Newsletter, error)
	Get(actorID, id uint) (*models.Newsletter, error)
	Update(actorID, id uint, req models.UpdateNewsletterRequest) (*models.Newsletter, error)
	Delete(actorID, id uint) error
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	publisherRepo  repositories.PublisherRepository
	userRepo       repositories.UserRepository
}

func NewNewsletterService(
	newsletterRepo repositories.NewsletterRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		publisherRepo:  publisherRepo,
		userRepo:       userRepo,
	}
}

// Create makes a newsletter. There is no publish workflow: IsPublished stays
// at its false default.
func (s *newsletterService) Create(actorID uint, req models.CreateNewsletterRequest) (*models.Newsletter, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAuthorContent() {
		return nil, models.ErrorPermissionDenied{Message: "only journalists can create newsletters"}
	}

	if req.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "publisher not found"}
			}
			return nil, err
		}
	}

	newsletter := &models.Newsletter{
		Title:       req.Title,
		Content:     req.Content,
		CreatedByID: actor.ID,
		PublisherID: req.PublisherID,
	}

	if err := s.newsletterRepo.Create(newsletter); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(newsletter.ID)
}

func (s *newsletterService) Get(actorID, id uint) (*models.Newsletter, error) {
	newsletter, err := s.getNewsletter(id)
	if err != nil {
		return nil, err
	}

	if !newsletter.IsPublished {
		if err := s.requireCreatorOrEditor(actorID, newsletter.CreatedByID, "view"); err != nil {
			return nil, err
		}
	}

	return newsletter, nil
}

func (s *newsletterService) Update(actorID, id uint, req models.UpdateNewsletterRequest) (*models.Newsletter, error) {
	newsletter, err := s.getNewsletter(id)
	if err != nil {
		return nil, err
	}

	if err := s.requireCreatorOrEditor(actorID, newsletter.CreatedByID, "edit"); err != nil {
		return nil, err
	}

	newsletter.Title = req.Title
	newsletter.Content = req.Content
	if err := s.newsletterRepo.Update(newsletter); err != nil {
		return nil, err
	}

	return s.newsletterRepo.GetByID(newsletter.ID)
}

func (s *newsletterService) Delete(actorID, id uint) error {
	newsletter, err := s.getNewsletter(id)
	if err != nil {
		return err
	}

	if err := s.requireCreatorOrEditor(actorID, newsletter.CreatedByID, "delete"); err != nil {
		return err
	}

	return s.newsletterRepo.Delete(newsletter.ID)
}

func (s *newsletterService) getNewsletter(id uint) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "newsletter not found"}
		}
		return nil, err
	}
	return newsletter, nil
}

func (s *newsletterService) requireCreatorOrEditor(actorID, creatorID uint, action string) error {
	if actorID == creatorID {
		return nil
	}
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return err
	}
	if actor.Role == models.RoleEditor {
		return nil
	}
	return models.ErrorPermissionDenied{Message: "you don't have permission to " + action + " this newsletter"}
}
