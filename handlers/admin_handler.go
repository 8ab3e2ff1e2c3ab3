package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/services"
)

// AdminHandler exposes maintenance operations.
type AdminHandler struct {
	articleService services.ArticleService
}

func NewAdminHandler(articleService services.ArticleService) *AdminHandler {
	return &AdminHandler{articleService: articleService}
}

// Reindex recomputes all search vectors and backfills missing embeddings.
func (h *AdminHandler) Reindex(c *gin.Context) {
	vectors, embedded, err := h.articleService.ReindexAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":            err.Error(),
			"vectors_updated":  vectors,
			"embeddings_added": embedded,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vectors_updated":  vectors,
		"embeddings_added": embedded,
	})
}

// PublishScheduled promotes scheduled articles whose time has passed.
func (h *AdminHandler) PublishScheduled(c *gin.Context) {
	published, err := h.articleService.PublishDueScheduled()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"published": published})
}
