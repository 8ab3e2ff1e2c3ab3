package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"blog-backend/config"
	"blog-backend/embedding"
	"blog-backend/handlers"
	"blog-backend/middleware"
	"blog-backend/repositories"
	"blog-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize embedding client; without a credential the semantic stage
	// degrades instead of crashing at startup.
	var embedder embedding.Client
	embedder, err := embedding.NewOpenAIClient(config.LoadEmbeddingConfig())
	if err != nil {
		log.Printf("Embedding client disabled: %v", err)
		embedder = embedding.Disabled{}
	} else {
		cached, err := embedding.NewCachedClient(embedder, config.LoadEmbeddingConfig().CacheSize)
		if err != nil {
			log.Fatal("Failed to create embedding cache:", err)
		}
		embedder = cached
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	authorRepo := repositories.NewAuthorRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)
	searchRepo := repositories.NewSearchRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, tagRepo, searchRepo, embedder)
	taxonomyService := services.NewTaxonomyService(authorRepo, categoryRepo, tagRepo)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	searchService := services.NewSearchService(searchRepo, embedder)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	searchHandler := handlers.NewSearchHandler(searchService)
	adminHandler := handlers.NewAdminHandler(articleService)

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
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
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

		// Newsletter (public)
		subscribers := v1.Group("/subscribers")
		{
			subscribers.POST("", subscriberHandler.Subscribe)
			subscribers.GET("/verify/:token", subscriberHandler.Verify)
			subscribers.POST("/unsubscribe", subscriberHandler.Unsubscribe)
		}

		// Search (public)
		search := v1.Group("/search")
		{
			search.GET("", searchHandler.Search)
			search.GET("/semantic", searchHandler.SemanticSearch)
			search.GET("/hybrid", searchHandler.HybridSearch)
			search.GET("/autocomplete", searchHandler.Autocomplete)
		}

		// Public article routes (published only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:slug", articleHandler.GetPublicArticle)
			public.POST("/articles/:id/like", articleHandler.LikeArticle)
			public.GET("/authors", taxonomyHandler.GetAuthors)
			public.GET("/categories", taxonomyHandler.GetCategories)
			public.GET("/tags", taxonomyHandler.GetTags)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/publish", articleHandler.PublishArticle)
				articles.POST("/:id/schedule", articleHandler.ScheduleArticle)
				articles.POST("/:id/unpublish", articleHandler.UnpublishArticle)
				articles.POST("/:id/feature", articleHandler.FeatureArticle)
				articles.GET("/:id/versions", articleHandler.GetArticleVersions)
				articles.POST("/:id/versions/:version/restore", articleHandler.RestoreArticleVersion)
			}

			// Authors
			authors := protected.Group("/authors")
			authors.Use(middleware.RequireRole("editor", "admin"))
			{
				authors.POST("", taxonomyHandler.CreateAuthor)
				authors.GET("/:id", taxonomyHandler.GetAuthor)
				authors.PUT("/:id", taxonomyHandler.UpdateAuthor)
				authors.DELETE("/:id", taxonomyHandler.DeleteAuthor)
			}

			// Categories
			categories := protected.Group("/categories")
			categories.Use(middleware.RequireRole("editor", "admin"))
			{
				categories.POST("", taxonomyHandler.CreateCategory)
				categories.GET("/:id", taxonomyHandler.GetCategory)
				categories.PUT("/:id", taxonomyHandler.UpdateCategory)
				categories.DELETE("/:id", taxonomyHandler.DeleteCategory)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.POST("", middleware.RequireRole("admin"), taxonomyHandler.CreateTag)
				tags.GET("/:id", taxonomyHandler.GetTag)
				tags.DELETE("/:id", middleware.RequireRole("admin"), taxonomyHandler.DeleteTag)
			}

			// Admin tooling
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/reindex", adminHandler.Reindex)
				admin.POST("/publish-scheduled", adminHandler.PublishScheduled)
				admin.GET("/subscribers", subscriberHandler.GetSubscribers)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
