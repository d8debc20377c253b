package services

import (
	"news-portal-api/models"
	"news-portal-api/repositories"

	"github.com/samber/lo"
)

const homeFeedSize = 10

type FeedService interface {
	Home() ([]models.Article, error)
	ArticleFeed(actorID uint) ([]models.Article, error)
	NewsletterFeed(actorID uint) ([]models.Newsletter, error)
	Dashboard(actorID uint) (interface{}, error)
}

type feedService struct {
	articleRepo    repositories.ArticleRepository
	newsletterRepo repositories.NewsletterRepository
	publisherRepo  repositories.PublisherRepository
	userRepo       repositories.UserRepository
}

func NewFeedService(
	articleRepo repositories.ArticleRepository,
	newsletterRepo repositories.NewsletterRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
) FeedService {
	return &feedService{
		articleRepo:    articleRepo,
		newsletterRepo: newsletterRepo,
		publisherRepo:  publisherRepo,
		userRepo:       userRepo,
	}
}

// Home is the public feed: the ten newest approved articles, no auth, no
// role filtering, no newsletters.
func (s *feedService) Home() ([]models.Article, error) {
	return s.articleRepo.ListApproved(homeFeedSize)
}

// ArticleFeed applies the visibility rule: readers see approved articles from
// their subscriptions; journalists and editors see the whole approved catalog.
func (s *feedService) ArticleFeed(actorID uint) ([]models.Article, error) {
	viewer, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	if viewer.Role != models.RoleReader {
		return s.articleRepo.ListApproved(0)
	}

	publisherIDs, journalistIDs := subscriptionIDs(viewer)
	return s.articleRepo.ListVisibleToReader(publisherIDs, journalistIDs, 0)
}

func (s *feedService) NewsletterFeed(actorID uint) ([]models.Newsletter, error) {
	viewer, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	if viewer.Role != models.RoleReader {
		return s.newsletterRepo.ListPublished(0)
	}

	publisherIDs, journalistIDs := subscriptionIDs(viewer)
	return s.newsletterRepo.ListVisibleToReader(publisherIDs, journalistIDs, 0)
}

// Dashboard dispatches on the viewer's role and builds the matching payload.
func (s *feedService) Dashboard(actorID uint) (interface{}, error) {
	viewer, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	switch viewer.Role {
	case models.RoleReader:
		return s.readerDashboard(viewer)
	case models.RoleJournalist:
		return s.journalistDashboard(viewer)
	case models.RoleEditor:
		return s.editorDashboard(viewer)
	}
	return nil, models.ErrorValidationFailed{Message: "unknown role"}
}

func (s *feedService) readerDashboard(viewer *models.User) (*models.ReaderDashboard, error) {
	publisherIDs, journalistIDs := subscriptionIDs(viewer)

	articles, err := s.articleRepo.ListVisibleToReader(publisherIDs, journalistIDs, homeFeedSize)
	if err != nil {
		return nil, err
	}

	newsletters, err := s.newsletterRepo.ListVisibleToReader(publisherIDs, journalistIDs, homeFeedSize)
	if err != nil {
		return nil, err
	}

	return &models.ReaderDashboard{
		Articles:              articles,
		Newsletters:           newsletters,
		SubscribedPublishers:  viewer.SubscribedPublishers,
		SubscribedJournalists: viewer.SubscribedJournalists,
	}, nil
}

func (s *feedService) journalistDashboard(viewer *models.User) (*models.JournalistDashboard, error) {
	articles, err := s.articleRepo.ListByJournalist(viewer.ID)
	if err != nil {
		return nil, err
	}

	newsletters, err := s.newsletterRepo.ListByCreator(viewer.ID)
	if err != nil {
		return nil, err
	}

	publishers, err := s.publisherRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return &models.JournalistDashboard{
		MyArticles:    articles,
		MyNewsletters: newsletters,
		Publishers:    publishers,
	}, nil
}

func (s *feedService) editorDashboard(viewer *models.User) (*models.EditorDashboard, error) {
	managed, err := s.publisherRepo.ManagedBy(viewer.ID)
	if err != nil {
		return nil, err
	}
	managedIDs := lo.Map(managed, func(p models.Publisher, _ int) uint { return p.ID })

	pending, err := s.articleRepo.ListPendingForPublishers(managedIDs)
	if err != nil {
		return nil, err
	}

	recent, err := s.articleRepo.ListRecentForPublishers(managedIDs, homeFeedSize)
	if err != nil {
		return nil, err
	}

	return &models.EditorDashboard{
		PendingArticles: pending,
		RecentArticles:  recent,
		Publishers:      managed,
	}, nil
}

func subscriptionIDs(viewer *models.User) (publisherIDs, journalistIDs []uint) {
	publisherIDs = lo.Map(viewer.SubscribedPublishers, func(p models.Publisher, _ int) uint { return p.ID })
	journalistIDs = lo.Map(viewer.SubscribedJournalists, func(u models.User, _ int) uint { return u.ID })
	return publisherIDs, journalistIDs
}
