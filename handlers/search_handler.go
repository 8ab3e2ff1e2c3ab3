package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/models"
	"blog-backend/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func searchFilters(params models.SearchParams) map[string]interface{} {
	filters := map[string]interface{}{}
	if params.Status != "" {
		filters["status"] = params.Status
	}
	if params.AuthorID > 0 {
		filters["author_id"] = params.AuthorID
	}
	if params.CategoryID > 0 {
		filters["category_id"] = params.CategoryID
	}
	if params.Featured != nil {
		filters["is_featured"] = *params.Featured
	}
	return filters
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		if t, err = time.Parse("2006-01-02", value); err != nil {
			return nil
		}
	}
	return &t
}

// Search runs the full-text query with fuzzy fallback.
func (h *SearchHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	highlight := true
	if params.Highlight != nil {
		highlight = *params.Highlight
	}

	results, err := h.searchService.SearchArticles(models.SearchQuery{
		Query:         params.Query,
		Filters:       searchFilters(params),
		PublishedFrom: parseDate(params.PublishedFrom),
		PublishedTo:   parseDate(params.PublishedTo),
		Limit:         params.Limit,
		Offset:        params.Offset,
		Highlight:     highlight,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// SemanticSearch embeds the query and returns nearest neighbors.
func (h *SearchHandler) SemanticSearch(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	hits, err := h.searchService.SearchByEmbedding(
		c.Request.Context(), params.Query, params.Limit, searchFilters(params), params.Metric)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": hits, "count": len(hits)})
}

// HybridSearch blends text and semantic rankings.
func (h *SearchHandler) HybridSearch(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}
	if params.SemanticWeight < 0 || params.SemanticWeight > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semantic_weight must be in [0,1]"})
		return
	}

	results, err := h.searchService.HybridSearch(c.Request.Context(), services.HybridSearchRequest{
		Query:          params.Query,
		Filters:        searchFilters(params),
		Limit:          params.Limit,
		SemanticWeight: params.SemanticWeight,
		RecencyBoost:   true,
		FeaturedBoost:  true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (h *SearchHandler) Autocomplete(c *gin.Context) {
	var params models.AutocompleteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := h.searchService.AutocompleteTitles(params.Prefix, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": suggestions})
}
