package services

import (
	"errors"

	"news-portal-api/models"
	"news-portal-api/repositories"

	"gorm.io/gorm"
)

type PublisherService interface {
	Register(actorID uint, req models.RegisterPublisherRequest) (*models.Publisher, error)
	Join(actorID, publisherID uint) (*models.Publisher, error)
	AddStaff(actorID, publisherID uint, req models.StaffRequest) error
	RemoveStaff(actorID, publisherID uint, req models.StaffRequest) error
	Get(id uint) (*models.Publisher, error)
	List() ([]models.Publisher, error)
	ManagedBy(actorID uint) ([]models.Publisher, error)
	IsMember(publisherID, userID uint) (bool, error)
}

type publisherService struct {
	publisherRepo repositories.PublisherRepository
	userRepo      repositories.UserRepository
}

func NewPublisherService(publisherRepo repositories.PublisherRepository, userRepo repositories.UserRepository) PublisherService {
	return &publisherService{
		publisherRepo: publisherRepo,
		userRepo:      userRepo,
	}
}

// Register creates a publishing house owned by the acting editor. The owner
// joins the editors set in the same create so both land in one transaction.
func (s *publisherService) Register(actorID uint, req models.RegisterPublisherRequest) (*models.Publisher, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanApprove() {
		return nil, models.ErrorPermissionDenied{Message: "only editors can register publishing houses"}
	}

	publisher := &models.Publisher{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     &actor.ID,
		Editors:     []models.User{*actor},
	}

	if err := s.publisherRepo.Create(publisher); err != nil {
		return nil, err
	}

	return s.publisherRepo.GetByID(publisher.ID)
}

func (s *publisherService) Join(actorID, publisherID uint) (*models.Publisher, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return nil, err
	}

	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "publisher not found"}
		}
		return nil, err
	}

	switch actor.Role {
	case models.RoleEditor:
		err = s.publisherRepo.AddEditor(publisher, actor)
	case models.RoleJournalist:
		err = s.publisherRepo.AddJournalist(publisher, actor)
	default:
		return nil, models.ErrorPermissionDenied{Message: "only editors and journalists can join publishing houses"}
	}
	if err != nil {
		return nil, err
	}

	return s.publisherRepo.GetByID(publisherID)
}

func (s *publisherService) AddStaff(actorID, publisherID uint, req models.StaffRequest) error {
	publisher, target, err := s.resolveStaffChange(actorID, publisherID, req)
	if err != nil {
		return err
	}

	if req.Kind == models.StaffEditor {
		return s.publisherRepo.AddEditor(publisher, target)
	}
	return s.publisherRepo.AddJournalist(publisher, target)
}

func (s *publisherService) RemoveStaff(actorID, publisherID uint, req models.StaffRequest) error {
	publisher, target, err := s.resolveStaffChange(actorID, publisherID, req)
	if err != nil {
		return err
	}

	if req.Kind == models.StaffEditor {
		return s.publisherRepo.RemoveEditor(publisher, target)
	}
	return s.publisherRepo.RemoveJournalist(publisher, target)
}

// resolveStaffChange checks the actor manages the house and resolves the
// target by username and matching role.
func (s *publisherService) resolveStaffChange(actorID, publisherID uint, req models.StaffRequest) (*models.Publisher, *models.User, error) {
	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.ErrorNotFound{Message: "publisher not found"}
		}
		return nil, nil, err
	}

	manages, err := s.publisherRepo.IsEditorMember(publisherID, actorID)
	if err != nil {
		return nil, nil, err
	}
	if !manages {
		return nil, nil, models.ErrorPermissionDenied{Message: "you don't have permission to manage this publishing house"}
	}

	target, err := s.userRepo.GetByUsernameAndRole(req.Username, req.Kind.Role())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.ErrorNotFound{Message: string(req.Kind) + " not found"}
		}
		return nil, nil, err
	}

	return publisher, target, nil
}

func (s *publisherService) Get(id uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "publisher not found"}
		}
		return nil, err
	}
	return publisher, nil
}

func (s *publisherService) List() ([]models.Publisher, error) {
	return s.publisherRepo.GetAll()
}

func (s *publisherService) ManagedBy(actorID uint) ([]models.Publisher, error) {
	return s.publisherRepo.ManagedBy(actorID)
}

func (s *publisherService) IsMember(publisherID, userID uint) (bool, error) {
	isEditor, err := s.publisherRepo.IsEditorMember(publisherID, userID)
	if err != nil {
		return false, err
	}
	if isEditor {
		return true, nil
	}
	return s.publisherRepo.IsJournalistMember(publisherID, userID)
}
