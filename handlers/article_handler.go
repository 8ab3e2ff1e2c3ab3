package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/models"
	"blog-backend/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func currentUser(c *gin.Context) (uint, models.UserRole) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	roleStr, _ := role.(string)
	return id, models.UserRole(roleStr)
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param})
		return 0, false
	}
	return uint(id), true
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, _ := currentUser(c)

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(req, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	h.listArticles(c, false)
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	h.listArticles(c, true)
}

func (h *ArticleHandler) listArticles(c *gin.Context, publicOnly bool) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetArticles(params, publicOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(id, false)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

// GetPublicArticle resolves by slug and counts the view atomically.
func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	article, err := h.articleService.GetArticleBySlug(c.Param("slug"), true)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	views, err := h.articleService.RecordView(article.ID)
	if err == nil {
		article.Views = views
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.UpdateArticle(id, req, userID, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(id, userID, role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.PublishArticle(id, userID, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) ScheduleArticle(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ScheduleArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.ScheduleArticle(id, req.ScheduledAt, userID, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UnpublishArticle(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.UnpublishArticle(id, userID, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

// FeatureArticle toggles the featured flag. Editors and admins only; the
// service enforces the role.
func (h *ArticleHandler) FeatureArticle(c *gin.Context) {
	_, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsFeatured bool `json:"is_featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.SetFeatured(id, req.IsFeatured, role)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) LikeArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	likes, err := h.articleService.RecordLike(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

func (h *ArticleHandler) GetArticleVersions(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	versions, err := h.articleService.GetVersions(id, userID, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, versions)
}

func (h *ArticleHandler) RestoreArticleVersion(c *gin.Context) {
	userID, role := currentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	versionNumber, err := strconv.Atoi(c.Param("version"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid version number"})
		return
	}

	article, err := h.articleService.RestoreVersion(id, versionNumber, userID, role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}
