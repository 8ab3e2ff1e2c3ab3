package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blog-backend/config"
	"blog-backend/handlers"
	"blog-backend/middleware"
	"blog-backend/models"
	"blog-backend/repositories"
	"blog-backend/services"
)

// stubEmbedder produces deterministic vectors so the semantic and hybrid
// paths can be exercised without calling an external API.
type stubEmbedder struct{}

func (stubEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vec := make([]float32, config.DefaultEmbeddingDimension)
	for i, r := range text {
		vec[(i*31+int(r))%len(vec)] += 1
	}
	return vec, nil
}

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
	userID uint
}

func (suite *IntegrationTestSuite) SetupSuite() {
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=myuser password=mypassword dbname=blog_test_db sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to connect to test database:", err)
	}
	suite.db = db

	if err := RunSQLFile(db, "../migration/init.sql"); err != nil {
		suite.T().Fatal("Failed to run migration:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	embedder := stubEmbedder{}

	userRepo := repositories.NewUserRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	authorRepo := repositories.NewAuthorRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	subscriberRepo := repositories.NewSubscriberRepository(suite.db)
	searchRepo := repositories.NewSearchRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, tagRepo, searchRepo, embedder)
	taxonomyService := services.NewTaxonomyService(authorRepo, categoryRepo, tagRepo)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	searchService := services.NewSearchService(searchRepo, embedder)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	searchHandler := handlers.NewSearchHandler(searchService)
	adminHandler := handlers.NewAdminHandler(articleService)

	router := gin.New()

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		subscribers := v1.Group("/subscribers")
		{
			subscribers.POST("", subscriberHandler.Subscribe)
			subscribers.GET("/verify/:token", subscriberHandler.Verify)
			subscribers.POST("/unsubscribe", subscriberHandler.Unsubscribe)
		}

		search := v1.Group("/search")
		{
			search.GET("", searchHandler.Search)
			search.GET("/semantic", searchHandler.SemanticSearch)
			search.GET("/hybrid", searchHandler.HybridSearch)
			search.GET("/autocomplete", searchHandler.Autocomplete)
		}

		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:slug", articleHandler.GetPublicArticle)
			public.POST("/articles/:id/like", articleHandler.LikeArticle)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

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
				articles.GET("/:id/versions", articleHandler.GetArticleVersions)
				articles.POST("/:id/versions/:version/restore", articleHandler.RestoreArticleVersion)
			}

			categories := protected.Group("/categories")
			categories.Use(middleware.RequireRole("editor", "admin"))
			{
				categories.POST("", taxonomyHandler.CreateCategory)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/reindex", adminHandler.Reindex)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	suite.db.Exec("DROP TABLE IF EXISTS article_tags")
	suite.db.Exec("DROP TABLE IF EXISTS article_versions")
	suite.db.Exec("DROP TABLE IF EXISTS articles")
	suite.db.Exec("DROP TABLE IF EXISTS tags")
	suite.db.Exec("DROP TABLE IF EXISTS categories")
	suite.db.Exec("DROP TABLE IF EXISTS authors")
	suite.db.Exec("DROP TABLE IF EXISTS subscribers")
	suite.db.Exec("DROP TABLE IF EXISTS users")
}

func (suite *IntegrationTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE TABLE article_tags RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE article_versions RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE articles RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE tags RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE subscribers RESTART IDENTITY CASCADE")
	suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE")

	suite.registerAndLoginTestUser()
}

type envelope struct {
	Code        int             `json:"code"`
	CodeMessage string          `json:"code_message"`
	CodeType    string          `json:"code_type"`
	Data        json.RawMessage `json:"data"`
}

func (suite *IntegrationTestSuite) registerAndLoginTestUser() {
	registerPayload := models.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	}

	body, _ := json.Marshal(registerPayload)
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	var auth models.AuthResponse
	suite.NoError(json.Unmarshal(resp.Data, &auth))

	suite.token = auth.Token
	suite.userID = auth.User.ID
}

func (suite *IntegrationTestSuite) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if suite.token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) createArticle(title, summary, content string, tags []string) models.Article {
	w := suite.doJSON("POST", "/api/v1/articles", models.CreateArticleRequest{
		Title:   title,
		Summary: summary,
		Content: content,
		Tags:    tags,
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var article models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &article))
	return article
}

func (suite *IntegrationTestSuite) publishArticle(id uint) models.Article {
	w := suite.doJSON("POST", fmt.Sprintf("/api/v1/articles/%d/publish", id), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var article models.Article
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &article))
	return article
}

func (suite *IntegrationTestSuite) TestAuthFlow() {
	w := suite.doJSON("POST", "/api/v1/auth/login", models.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	var auth models.AuthResponse
	suite.NoError(json.Unmarshal(resp.Data, &auth))
	suite.NotEmpty(auth.Token)
	suite.Equal("testuser", auth.User.Username)

	w = suite.doJSON("GET", "/api/v1/profile", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestCreateAndGetArticle() {
	article := suite.createArticle("Test Article", "A short summary", "<p>This is test content</p>", []string{"golang", "api"})

	suite.Equal("Test Article", article.Title)
	suite.Equal("test-article", article.Slug)
	suite.Equal(models.StatusDraft, article.Status)
	suite.Require().NotNil(article.AuthorID)
	suite.Equal(suite.userID, *article.AuthorID)
	suite.Len(article.Tags, 2)

	w := suite.doJSON("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var fetched models.Article
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
	suite.Equal(article.ID, fetched.ID)
	suite.Equal("Test Article", fetched.Title)
}

func (suite *IntegrationTestSuite) TestUpdateCreatesVersion() {
	article := suite.createArticle("Versioned Article", "", "<p>Original content</p>", nil)

	newContent := "<p>Updated content</p>"
	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/articles/%d", article.ID), models.UpdateArticleRequest{
		Content:       &newContent,
		ChangeComment: "second draft",
	})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/articles/%d/versions", article.ID), nil)
	suite.Equal(http.StatusOK, w.Code)

	var versions []models.ArticleVersion
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &versions))
	suite.Require().Len(versions, 2)
}

func (suite *IntegrationTestSuite) TestRestoreVersion() {
	article := suite.createArticle("Restorable Article", "", "<p>First</p>", nil)

	newContent := "<p>Second</p>"
	w := suite.doJSON("PUT", fmt.Sprintf("/api/v1/articles/%d", article.ID), models.UpdateArticleRequest{Content: &newContent})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.doJSON("POST", fmt.Sprintf("/api/v1/articles/%d/versions/1/restore", article.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var restored models.Article
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &restored))
	suite.Equal("<p>First</p>", restored.Content)

	// The restore itself is a content mutation, so it snapshots version 3.
	w = suite.doJSON("GET", fmt.Sprintf("/api/v1/articles/%d/versions", article.ID), nil)
	var versions []models.ArticleVersion
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &versions))
	suite.Len(versions, 3)
}

func (suite *IntegrationTestSuite) TestPublishAndPublicAccess() {
	article := suite.createArticle("Article to Publish", "", "<p>Content to publish</p>", nil)

	// Drafts are invisible to the public surface.
	req := httptest.NewRequest("GET", "/api/v1/public/articles/"+article.Slug, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusNotFound, w.Code)

	published := suite.publishArticle(article.ID)
	suite.Equal(models.StatusPublished, published.Status)
	suite.NotNil(published.PublishedAt)

	// Each public read counts one view atomically.
	for i := 1; i <= 3; i++ {
		req = httptest.NewRequest("GET", "/api/v1/public/articles/"+article.Slug, nil)
		w = httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusOK, w.Code)

		var fetched models.Article
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &fetched))
		suite.Equal(i, fetched.Views)
	}
}

func (suite *IntegrationTestSuite) TestLikeArticle() {
	article := suite.createArticle("Likeable Article", "", "<p>Content</p>", nil)
	suite.publishArticle(article.ID)

	for i := 1; i <= 2; i++ {
		req := httptest.NewRequest("POST", fmt.Sprintf("/api/v1/public/articles/%d/like", article.ID), nil)
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusOK, w.Code)

		var resp struct {
			Likes int `json:"likes"`
		}
		suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal(i, resp.Likes)
	}
}

func (suite *IntegrationTestSuite) TestFullTextSearch() {
	a := suite.createArticle("PostgreSQL Performance Tuning", "Indexes and query plans", "<p>How to tune postgresql queries</p>", nil)
	b := suite.createArticle("Baking Sourdough Bread", "Flour and water", "<p>A baking guide</p>", nil)
	suite.publishArticle(a.ID)
	suite.publishArticle(b.ID)

	w := suite.doJSON("GET", "/api/v1/search?q=postgresql&status=published", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Results []models.SearchResult `json:"results"`
		Count   int                   `json:"count"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Equal(1, resp.Count)
	suite.Equal(a.ID, resp.Results[0].ID)
	suite.Greater(resp.Results[0].Score, 0.0)
	// Highlighting is on by default.
	suite.Contains(resp.Results[0].Title, "<b>")
}

func (suite *IntegrationTestSuite) TestSearchFuzzyFallback() {
	a := suite.createArticle("Kubernetes Networking Deep Dive", "Services and ingress", "<p>Cluster networking</p>", nil)
	suite.publishArticle(a.ID)

	// "Kuberne" is not a lexeme in the vector, so full text finds nothing
	// and the trigram fallback takes over on substring match.
	w := suite.doJSON("GET", "/api/v1/search?q=Kuberne", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Results []models.SearchResult `json:"results"`
		Count   int                   `json:"count"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Equal(1, resp.Count)
	suite.Equal(a.ID, resp.Results[0].ID)
}

func (suite *IntegrationTestSuite) TestAutocomplete() {
	a := suite.createArticle("Golang Concurrency Patterns", "", "<p>Goroutines</p>", nil)
	suite.createArticle("Rust Ownership", "", "<p>Borrow checker</p>", nil)
	suite.publishArticle(a.ID)

	w := suite.doJSON("GET", "/api/v1/search/autocomplete?prefix=gola", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Results []models.TitleSuggestion `json:"results"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Results, 1)
	suite.Equal("Golang Concurrency Patterns", resp.Results[0].Title)
}

func (suite *IntegrationTestSuite) TestHighlightDoesNotChangeOrdering() {
	// Weighted fields separate the scores: title (A) > summary (B) > content (C).
	a := suite.createArticle("Docker Networking Guide", "Bridges and overlays", "<p>Network drivers</p>", nil)
	b := suite.createArticle("Container Basics", "Docker fundamentals for beginners", "<p>Images and registries</p>", nil)
	c := suite.createArticle("Deployment Notes", "Release process", "<p>We ship everything with docker</p>", nil)
	suite.publishArticle(a.ID)
	suite.publishArticle(b.ID)
	suite.publishArticle(c.ID)

	fetch := func(highlight string) []models.SearchResult {
		w := suite.doJSON("GET", "/api/v1/search?q=docker&status=published&highlight="+highlight, nil)
		suite.Require().Equal(http.StatusOK, w.Code)

		var resp struct {
			Results []models.SearchResult `json:"results"`
		}
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Results
	}

	plain := fetch("false")
	highlighted := fetch("true")

	suite.Require().Len(plain, 3)
	suite.Require().Len(highlighted, 3)
	for i := range plain {
		suite.Equal(plain[i].ID, highlighted[i].ID)
		suite.Equal(plain[i].Slug, highlighted[i].Slug)
		suite.InDelta(plain[i].Score, highlighted[i].Score, 1e-9)
		suite.NotContains(plain[i].Title, "<b>")
	}
	suite.Equal([]uint{a.ID, b.ID, c.ID}, []uint{plain[0].ID, plain[1].ID, plain[2].ID})
}

func (suite *IntegrationTestSuite) TestSemanticSearch() {
	a := suite.createArticle("Vector Databases Explained", "Similarity search", "<p>Embeddings and ANN indexes</p>", nil)
	suite.publishArticle(a.ID)

	w := suite.doJSON("GET", "/api/v1/search/semantic?q=vector+similarity&limit=5", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Results []models.SemanticHit `json:"results"`
		Count   int                  `json:"count"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.GreaterOrEqual(resp.Count, 1)
}

func (suite *IntegrationTestSuite) TestSemanticSearchInnerProductOrdering() {
	a := suite.createArticle("First Product Doc", "", "<p>One</p>", nil)
	b := suite.createArticle("Second Product Doc", "", "<p>Two</p>", nil)
	c := suite.createArticle("Third Product Doc", "", "<p>Three</p>", nil)
	suite.publishArticle(a.ID)
	suite.publishArticle(b.ID)
	suite.publishArticle(c.ID)

	// Constant vectors make the inner product with any non-negative query
	// vector strictly ordered by the constant.
	setEmbedding := func(id uint, v float64) {
		err := suite.db.Exec(
			"UPDATE articles SET embedding = array_fill(?::float4, ARRAY[?])::vector WHERE id = ?",
			v, config.DefaultEmbeddingDimension, id,
		).Error
		suite.Require().NoError(err)
	}
	setEmbedding(a.ID, 0.002)
	setEmbedding(b.ID, 0.001)
	setEmbedding(c.ID, -0.001)

	w := suite.doJSON("GET", "/api/v1/search/semantic?q=product&metric=ip&limit=3", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Results []models.SemanticHit `json:"results"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Results, 3)

	// Descending inner product: the <#> operator negates it, so the raw
	// distances come back ascending and the best match is negative.
	suite.Equal([]uint{a.ID, b.ID, c.ID},
		[]uint{resp.Results[0].ID, resp.Results[1].ID, resp.Results[2].ID})
	suite.Less(resp.Results[0].Distance, resp.Results[1].Distance)
	suite.Less(resp.Results[1].Distance, resp.Results[2].Distance)
	suite.Less(resp.Results[0].Distance, 0.0)
}

func (suite *IntegrationTestSuite) TestHybridSearch() {
	a := suite.createArticle("Hybrid Search in Practice", "Text plus vectors", "<p>Fusing rankings</p>", nil)
	suite.publishArticle(a.ID)

	w := suite.doJSON("GET", "/api/v1/search/hybrid?q=hybrid+search&semantic_weight=0.5", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Results []models.HybridResult `json:"results"`
		Count   int                   `json:"count"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().GreaterOrEqual(resp.Count, 1)
	suite.Equal(a.ID, resp.Results[0].ID)
	suite.Greater(resp.Results[0].CombinedScore, 0.0)

	w = suite.doJSON("GET", "/api/v1/search/hybrid?q=hybrid&semantic_weight=1.5", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestSubscriberFlow() {
	w := suite.doJSON("POST", "/api/v1/subscribers", models.SubscribeRequest{Email: "reader@example.com"})
	suite.Require().Equal(http.StatusOK, w.Code)

	// Duplicate active subscription is rejected.
	w = suite.doJSON("POST", "/api/v1/subscribers", models.SubscribeRequest{Email: "reader@example.com"})
	suite.Equal(http.StatusBadRequest, w.Code)

	var sub models.Subscriber
	suite.Require().NoError(suite.db.Where("email = ?", "reader@example.com").First(&sub).Error)
	suite.Require().NotEmpty(sub.VerificationToken)

	w = suite.doJSON("GET", "/api/v1/subscribers/verify/"+sub.VerificationToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doJSON("GET", "/api/v1/subscribers/verify/not-a-real-token", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.doJSON("POST", "/api/v1/subscribers/unsubscribe", models.SubscribeRequest{Email: "reader@example.com"})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *IntegrationTestSuite) TestAdminReindex() {
	a := suite.createArticle("Reindex Target", "", "<p>Content</p>", nil)
	suite.publishArticle(a.ID)

	// Wipe the derived columns to prove the reindex rebuilds them.
	suite.db.Exec("UPDATE articles SET search_vector = NULL, embedding = NULL")

	w := suite.doJSON("POST", "/api/v1/admin/reindex", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		VectorsUpdated  int64 `json:"vectors_updated"`
		EmbeddingsAdded int   `json:"embeddings_added"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.VectorsUpdated)
	suite.Equal(1, resp.EmbeddingsAdded)

	var count int64
	suite.db.Raw("SELECT COUNT(*) FROM articles WHERE search_vector IS NOT NULL AND embedding IS NOT NULL").Scan(&count)
	suite.Equal(int64(1), count)
}

func (suite *IntegrationTestSuite) TestRoleEnforcement() {
	adminToken := suite.token

	// Register a plain writer and try an editor-only endpoint.
	w := suite.doJSON("POST", "/api/v1/auth/register", models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "password123",
		Role:     models.RoleWriter,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var auth models.AuthResponse
	suite.NoError(json.Unmarshal(resp.Data, &auth))

	suite.token = auth.Token
	w = suite.doJSON("POST", "/api/v1/categories", models.CreateCategoryRequest{Name: "Engineering"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.token = adminToken
	w = suite.doJSON("POST", "/api/v1/categories", models.CreateCategoryRequest{Name: "Engineering"})
	suite.Equal(http.StatusOK, w.Code)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func RunSQLFile(db *gorm.DB, filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	return db.Exec(string(content)).Error
}
