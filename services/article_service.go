package services

import (
	"errors"
	"time"

	"news-portal-api/models"
	"news-portal-api/notifier"
	"news-portal-api/repositories"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type ArticleService interface {
	Create(actorID uint, req models.CreateArticleRequest) (*models.Article, error)
	Get(actorID, id uint) (*models.Article, error)
	Update(actorID, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(actorID, id uint) error
	Approve(actorID, id uint) (*models.ApproveArticleResponse, error)
	Pending(actorID uint) ([]models.Article, error)
}

type articleService struct {
	articleRepo   repositories.ArticleRepository
	publisherRepo repositories.PublisherRepository
	userRepo      repositories.UserRepository
	notifier      notifier.Notifier
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
	notifier notifier.Notifier,
) ArticleService {
	return &articleService{
		articleRepo:   articleRepo,
		publisherRepo: publisherRepo,
		userRepo:      userRepo,
		notifier:      notifier,
	}
}

// Create makes a new article. With a publisher attached it starts pending;
// without one it is independently published with no review step.
func (s *articleService) Create(actorID uint, req models.CreateArticleRequest) (*models.Article, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAuthorContent() {
		return nil, models.ErrorPermissionDenied{Message: "only journalists can create articles"}
	}

	if req.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "publisher not found"}
			}
			return nil, err
		}
		member, err := s.publisherRepo.IsJournalistMember(*req.PublisherID, actorID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, models.ErrorPermissionDenied{Message: "you are not a journalist of this publishing house"}
		}
	}

	article := &models.Article{
		Title:        req.Title,
		Content:      req.Content,
		JournalistID: actor.ID,
		PublisherID:  req.PublisherID,
		IsApproved:   req.PublisherID == nil,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

// Get enforces the detail carve-out: an unapproved article is visible only to
// its author and its approver, nobody else.
func (s *articleService) Get(actorID, id uint) (*models.Article, error) {
	article, err := s.getArticle(id)
	if err != nil {
		return nil, err
	}

	if !article.IsApproved {
		isApprover := article.ApprovedByID != nil && *article.ApprovedByID == actorID
		if article.JournalistID != actorID && !isApprover {
			return nil, models.ErrorPermissionDenied{Message: "you don't have permission to view this article"}
		}
	}

	return article, nil
}

// Update lets the author or any editor change the article. Edits never reset
// the approval state.
func (s *articleService) Update(actorID, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.getArticle(id)
	if err != nil {
		return nil, err
	}

	if err := s.requireAuthorOrEditor(actorID, article.JournalistID, "edit"); err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) Delete(actorID, id uint) error {
	article, err := s.getArticle(id)
	if err != nil {
		return err
	}

	if err := s.requireAuthorOrEditor(actorID, article.JournalistID, "delete"); err != nil {
		return err
	}

	return s.articleRepo.Delete(article.ID)
}

// Approve runs the one-way transition to the approved state. The actor must
// be an editor and a member (owner or editor) of the article's publisher.
// Repeat calls keep the permission check but leave the state untouched.
func (s *articleService) Approve(actorID, id uint) (*models.ApproveArticleResponse, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanApprove() {
		return nil, models.ErrorPermissionDenied{Message: "you don't have permission to approve articles"}
	}

	article, err := s.getArticle(id)
	if err != nil {
		return nil, err
	}

	if article.PublisherID != nil {
		member, err := s.publisherRepo.IsEditorMember(*article.PublisherID, actorID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, models.ErrorPermissionDenied{Message: "you can only approve articles from your publishing house"}
		}
	}

	if article.IsApproved {
		return &models.ApproveArticleResponse{Article: *article}, nil
	}

	if err := s.articleRepo.Approve(article, actor.ID, time.Now()); err != nil {
		return nil, err
	}

	// The approval is committed; a failed announcement only degrades to a
	// warning on the response.
	resp := &models.ApproveArticleResponse{Article: *article}
	if err := s.notifier.Notify(article); err != nil {
		log.Warn().Err(err).Uint("article_id", article.ID).Msg("Approval notification failed")
		resp.NotifyFailed = true
	}

	return resp, nil
}

// Pending lists unapproved articles across the publishers the editor manages.
func (s *articleService) Pending(actorID uint) ([]models.Article, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanApprove() {
		return nil, models.ErrorPermissionDenied{Message: "only editors can review pending articles"}
	}

	managed, err := s.publisherRepo.ManagedBy(actorID)
	if err != nil {
		return nil, err
	}

	ids := lo.Map(managed, func(p models.Publisher, _ int) uint { return p.ID })
	return s.articleRepo.ListPendingForPublishers(ids)
}

func (s *articleService) getArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) requireAuthorOrEditor(actorID, authorID uint, action string) error {
	if actorID == authorID {
		return nil
	}
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return err
	}
	// Editors may edit or delete any article system-wide, not only within
	// their own publishing house.
	if actor.Role == models.RoleEditor {
		return nil
	}
	return models.ErrorPermissionDenied{Message: "you don't have permission to " + action + " this article"}
}
