package services_test

import (
	"fmt"
	"testing"
	"time"

	"news-portal-api/config"
	"news-portal-api/models"
	"news-portal-api/notifier"
	"news-portal-api/repositories"
	"news-portal-api/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database so every suite gets an
// isolated store that survives across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}
	if err := config.RunMigration(db); err != nil {
		t.Fatal("Failed to migrate test database:", err)
	}
	return db
}

// testEnv bundles the repositories and services under test.
type testEnv struct {
	db *gorm.DB

	userRepo         repositories.UserRepository
	groupRepo        repositories.GroupRepository
	publisherRepo    repositories.PublisherRepository
	articleRepo      repositories.ArticleRepository
	newsletterRepo   repositories.NewsletterRepository
	subscriptionRepo repositories.SubscriptionRepository

	notifier *fakeNotifier

	auth          services.AuthService
	publishers    services.PublisherService
	articles      services.ArticleService
	newsletters   services.NewsletterService
	subscriptions services.SubscriptionService
	feeds         services.FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)

	env := &testEnv{
		db:               db,
		userRepo:         repositories.NewUserRepository(db),
		groupRepo:        repositories.NewGroupRepository(db),
		publisherRepo:    repositories.NewPublisherRepository(db),
		articleRepo:      repositories.NewArticleRepository(db),
		newsletterRepo:   repositories.NewNewsletterRepository(db),
		subscriptionRepo: repositories.NewSubscriptionRepository(db),
		notifier:         &fakeNotifier{},
	}

	env.auth = services.NewAuthService(env.userRepo, env.groupRepo, env.publisherRepo, env.subscriptionRepo)
	env.publishers = services.NewPublisherService(env.publisherRepo, env.userRepo)
	env.articles = services.NewArticleService(env.articleRepo, env.publisherRepo, env.userRepo, env.notifier)
	env.newsletters = services.NewNewsletterService(env.newsletterRepo, env.publisherRepo, env.userRepo)
	env.subscriptions = services.NewSubscriptionService(env.subscriptionRepo, env.publisherRepo, env.userRepo)
	env.feeds = services.NewFeedService(env.articleRepo, env.newsletterRepo, env.publisherRepo, env.userRepo)

	return env
}

func (env *testEnv) truncate(t *testing.T) {
	tables := []string{
		"subscriptions",
		"user_subscribed_publishers",
		"user_subscribed_journalists",
		"publisher_editors",
		"publisher_journalists",
		"user_groups",
		"group_permissions",
		"articles",
		"newsletters",
		"publishers",
		"permissions",
		"groups",
		"users",
	}
	for _, table := range tables {
		if err := env.db.Exec(`DELETE FROM "` + table + `"`).Error; err != nil {
			t.Fatal("Failed to clean table "+table+":", err)
		}
	}
}

func (env *testEnv) createUser(t *testing.T, username string, role models.UserRole) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	if err := env.userRepo.Create(user); err != nil {
		t.Fatal("Failed to create user:", err)
	}
	return user
}

// createPublisher sets up a house owned by the editor, owner in the editors
// set, matching what PublisherService.Register produces.
func (env *testEnv) createPublisher(t *testing.T, name string, owner *models.User) *models.Publisher {
	publisher := &models.Publisher{
		Name:    name,
		OwnerID: &owner.ID,
		Editors: []models.User{*owner},
	}
	if err := env.db.Create(publisher).Error; err != nil {
		t.Fatal("Failed to create publisher:", err)
	}
	return publisher
}

func (env *testEnv) createArticle(t *testing.T, title string, author *models.User, publisherID *uint, approved bool, createdAt time.Time) *models.Article {
	article := &models.Article{
		Title:        title,
		Content:      "content of " + title,
		JournalistID: author.ID,
		PublisherID:  publisherID,
		IsApproved:   approved,
		CreatedAt:    createdAt,
	}
	if err := env.db.Create(article).Error; err != nil {
		t.Fatal("Failed to create article:", err)
	}
	return article
}

type fakeNotifier struct {
	err   error
	calls []uint
}

var _ notifier.Notifier = (*fakeNotifier)(nil)

func (n *fakeNotifier) Notify(article *models.Article) error {
	n.calls = append(n.calls, article.ID)
	return n.err
}
