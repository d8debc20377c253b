package services

import (
	"errors"
	"time"

	"news-portal-api/config"
	"news-portal-api/models"
	"news-portal-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo         repositories.UserRepository
	groupRepo        repositories.GroupRepository
	publisherRepo    repositories.PublisherRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	groupRepo repositories.GroupRepository,
	publisherRepo repositories.PublisherRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		groupRepo:        groupRepo,
		publisherRepo:    publisherRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, models.ErrorValidationFailed{Message: "passwords don't match"}
	}

	role := req.Role
	if role == "" {
		role = models.RoleReader
	}
	if !role.Valid() {
		return nil, models.ErrorValidationFailed{Message: "invalid role"}
	}

	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrorValidationFailed{Message: "username already exists"}
	}

	// Only readers hold subscriptions; attempted sets on any other role are
	// discarded before the user is created.
	var initialPublishers []models.Publisher
	var initialJournalists []models.User
	if role == models.RoleReader {
		initialPublishers, initialJournalists, err = s.resolveInitialSubscriptions(req)
		if err != nil {
			return nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
		Bio:      req.Bio,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Role bundle assignment is best-effort: a broken permission subsystem
	// must not block signup.
	if err := s.groupRepo.AssignRoleBundle(user, role); err != nil {
		log.Warn().Err(err).
			Str("username", user.Username).
			Str("role", string(role)).
			Msg("Failed to assign role permission bundle")
	}

	if len(initialPublishers) > 0 || len(initialJournalists) > 0 {
		if err := s.subscriptionRepo.ReplaceForReader(user, initialPublishers, initialJournalists); err != nil {
			return nil, err
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) resolveInitialSubscriptions(req models.RegisterRequest) ([]models.Publisher, []models.User, error) {
	publishers, err := s.publisherRepo.GetByIDs(req.SubscribedPublisherIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(publishers) != len(req.SubscribedPublisherIDs) {
		return nil, nil, models.ErrorValidationFailed{Message: "unknown publisher in subscriptions"}
	}

	journalists, err := s.userRepo.ListByIDsAndRole(req.SubscribedJournalistIDs, models.RoleJournalist)
	if err != nil {
		return nil, nil, err
	}
	if len(journalists) != len(req.SubscribedJournalistIDs) {
		return nil, nil, models.ErrorValidationFailed{Message: "subscriptions may only target journalists"}
	}

	return publishers, journalists, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid username or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
