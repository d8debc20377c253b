package main

import (
	"net/http"
	"os"

	"news-portal-api/config"
	"news-portal-api/handlers"
	"news-portal-api/middleware"
	"news-portal-api/models"
	"news-portal-api/notifier"
	"news-portal-api/repositories"
	"news-portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)

	// Initialize services
	social := notifier.NewSocialNotifier()
	authService := services.NewAuthService(userRepo, groupRepo, publisherRepo, subscriptionRepo)
	publisherService := services.NewPublisherService(publisherRepo, userRepo)
	articleService := services.NewArticleService(articleRepo, publisherRepo, userRepo, social)
	newsletterService := services.NewNewsletterService(newsletterRepo, publisherRepo, userRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, publisherRepo, userRepo)
	feedService := services.NewFeedService(articleRepo, newsletterRepo, publisherRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, feedService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, feedService)
	publisherHandler := handlers.NewPublisherHandler(publisherService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public home feed
		public := v1.Group("/public")
		{
			public.GET("/home", articleHandler.GetHome)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile and dashboard
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/dashboard", articleHandler.GetDashboard)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/pending", middleware.RequireRole(models.RoleEditor), articleHandler.GetPendingArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/approve", articleHandler.ApproveArticle)
			}

			// Newsletters
			newsletters := protected.Group("/newsletters")
			{
				newsletters.POST("", newsletterHandler.CreateNewsletter)
				newsletters.GET("", newsletterHandler.GetNewsletters)
				newsletters.GET("/:id", newsletterHandler.GetNewsletter)
				newsletters.PUT("/:id", newsletterHandler.UpdateNewsletter)
				newsletters.DELETE("/:id", newsletterHandler.DeleteNewsletter)
			}

			// Publishers
			publishers := protected.Group("/publishers")
			{
				publishers.POST("", publisherHandler.RegisterPublisher)
				publishers.GET("", publisherHandler.GetPublishers)
				publishers.GET("/:id", publisherHandler.GetPublisher)
				publishers.POST("/:id/join", publisherHandler.JoinPublisher)
				publishers.POST("/:id/staff", publisherHandler.AddStaff)
				publishers.DELETE("/:id/staff", publisherHandler.RemoveStaff)
			}

			// Subscriptions
			subscriptions := protected.Group("/subscriptions")
			subscriptions.Use(middleware.RequireRole(models.RoleReader))
			{
				subscriptions.PUT("", subscriptionHandler.UpdateSubscriptions)
				subscriptions.GET("", subscriptionHandler.GetSubscriptions)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
