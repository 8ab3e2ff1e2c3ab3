package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/helper"
	"blog-backend/models"
	"blog-backend/services"
)

// TaxonomyHandler serves authors, categories and tags.
type TaxonomyHandler struct {
	taxonomyService services.TaxonomyService
	Helper          *helper.HTTPHelper
}

func NewTaxonomyHandler(taxonomyService services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService, Helper: &helper.HTTPHelper{}}
}

func (h *TaxonomyHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ID", h.Helper.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

// --- Authors ---

func (h *TaxonomyHandler) CreateAuthor(c *gin.Context) {
	var req models.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	author, err := h.taxonomyService.CreateAuthor(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Author created successfully", author)
}

func (h *TaxonomyHandler) GetAuthors(c *gin.Context) {
	authors, err := h.taxonomyService.GetAuthors()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", authors)
}

func (h *TaxonomyHandler) GetAuthor(c *gin.Context) {
	if slug := c.Query("slug"); slug != "" {
		author, err := h.taxonomyService.GetAuthorBySlug(slug)
		if err != nil {
			h.Helper.SendNotFoundError(c, "Author not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendSuccess(c, "Success", author)
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}
	author, err := h.taxonomyService.GetAuthor(id)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Author not found", h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", author)
}

func (h *TaxonomyHandler) UpdateAuthor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	author, err := h.taxonomyService.UpdateAuthor(id, req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Author updated successfully", author)
}

func (h *TaxonomyHandler) DeleteAuthor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteAuthor(id); err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Author deleted successfully", h.Helper.EmptyJsonMap())
}

// --- Categories ---

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.taxonomyService.CreateCategory(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Category created successfully", category)
}

func (h *TaxonomyHandler) GetCategories(c *gin.Context) {
	categories, err := h.taxonomyService.GetCategories()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", categories)
}

func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	if slug := c.Query("slug"); slug != "" {
		category, err := h.taxonomyService.GetCategoryBySlug(slug)
		if err != nil {
			h.Helper.SendNotFoundError(c, "Category not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendSuccess(c, "Success", category)
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}
	category, err := h.taxonomyService.GetCategory(id)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Category not found", h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", category)
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.taxonomyService.UpdateCategory(id, req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Category updated successfully", category)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteCategory(id); err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Category deleted successfully", h.Helper.EmptyJsonMap())
}

// --- Tags ---

func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	tag, err := h.taxonomyService.CreateTag(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Tag created successfully", tag)
}

func (h *TaxonomyHandler) GetTags(c *gin.Context) {
	tags, err := h.taxonomyService.GetTags()
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", tags)
}

func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	if slug := c.Query("slug"); slug != "" {
		tag, err := h.taxonomyService.GetTagBySlug(slug)
		if err != nil {
			h.Helper.SendNotFoundError(c, "Tag not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendSuccess(c, "Success", tag)
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}
	tag, err := h.taxonomyService.GetTag(id)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Tag not found", h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Success", tag)
}

func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.taxonomyService.DeleteTag(id); err != nil {
		h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendSuccess(c, "Tag deleted successfully", h.Helper.EmptyJsonMap())
}
