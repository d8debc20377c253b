package services

import (
	"news-portal-api/models"
	"news-portal-api/repositories"

	"github.com/samber/lo"
)

type SubscriptionService interface {
	Subscribe(actorID uint, req models.SubscribeRequest) (*models.SubscriptionsResponse, error)
	Current(actorID uint) (*models.SubscriptionsResponse, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	publisherRepo    repositories.PublisherRepository
	userRepo         repositories.UserRepository
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		publisherRepo:    publisherRepo,
		userRepo:         userRepo,
	}
}

// Subscribe replaces the reader's entire subscription state with the given
// sets. The swap is atomic: repeated calls leave exactly the latest sets,
// never a union.
func (s *subscriptionService) Subscribe(actorID uint, req models.SubscribeRequest) (*models.SubscriptionsResponse, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanSubscribe() {
		return nil, models.ErrorPermissionDenied{Message: "only readers can manage subscriptions"}
	}

	// Subscriptions are unique per (reader, target); a repeated id in the
	// request would mean a duplicate row.
	if len(lo.Uniq(req.PublisherIDs)) != len(req.PublisherIDs) ||
		len(lo.Uniq(req.JournalistIDs)) != len(req.JournalistIDs) {
		return nil, models.ErrorConflictFailed{Message: "duplicate subscription target"}
	}

	publishers, err := s.publisherRepo.GetByIDs(req.PublisherIDs)
	if err != nil {
		return nil, err
	}
	if len(publishers) != len(req.PublisherIDs) {
		return nil, models.ErrorNotFound{Message: "publisher not found"}
	}

	journalists, err := s.userRepo.ListByIDsAndRole(req.JournalistIDs, models.RoleJournalist)
	if err != nil {
		return nil, err
	}
	if len(journalists) != len(req.JournalistIDs) {
		return nil, models.ErrorValidationFailed{Message: "subscriptions may only target journalists"}
	}

	if err := s.subscriptionRepo.ReplaceForReader(actor, publishers, journalists); err != nil {
		return nil, err
	}

	return &models.SubscriptionsResponse{
		Publishers:  publishers,
		Journalists: journalists,
	}, nil
}

func (s *subscriptionService) Current(actorID uint) (*models.SubscriptionsResponse, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanSubscribe() {
		return nil, models.ErrorPermissionDenied{Message: "only readers can manage subscriptions"}
	}

	return &models.SubscriptionsResponse{
		Publishers:  actor.SubscribedPublishers,
		Journalists: actor.SubscribedJournalists,
	}, nil
}
