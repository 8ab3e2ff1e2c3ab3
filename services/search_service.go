package services

import (
	"context"
	"log"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"blog-backend/embedding"
	"blog-backend/models"
	"blog-backend/repositories"
)

const (
	recentWindowDays   = 30
	maxRecencyBoost    = 0.15
	featuredMultiplier = 1.1
	overfetchFactor    = 2
)

type SearchService interface {
	SearchArticles(q models.SearchQuery) ([]models.SearchResult, error)
	SearchByEmbedding(ctx context.Context, queryText string, limit int, filters map[string]interface{}, metric string) ([]models.SemanticHit, error)
	HybridSearch(ctx context.Context, req HybridSearchRequest) ([]models.HybridResult, error)
	AutocompleteTitles(prefix string, limit int) ([]models.TitleSuggestion, error)
}

// HybridSearchRequest controls one fused text+semantic query.
type HybridSearchRequest struct {
	Query          string
	Filters        map[string]interface{}
	Limit          int
	SemanticWeight float64
	RecencyBoost   bool
	FeaturedBoost  bool
}

type searchService struct {
	searchRepo repositories.SearchRepository
	embedder   embedding.Client
}

func NewSearchService(searchRepo repositories.SearchRepository, embedder embedding.Client) SearchService {
	return &searchService{
		searchRepo: searchRepo,
		embedder:   embedder,
	}
}

func (s *searchService) SearchArticles(q models.SearchQuery) ([]models.SearchResult, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	return s.searchRepo.SearchArticles(q)
}

// SearchByEmbedding embeds the query text and returns the nearest articles
// under the requested metric.
func (s *searchService) SearchByEmbedding(ctx context.Context, queryText string, limit int, filters map[string]interface{}, metric string) ([]models.SemanticHit, error) {
	if limit <= 0 {
		limit = 10
	}

	vec, err := s.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return nil, err
	}

	return s.searchRepo.SearchByEmbedding(vec, limit, filters, metric)
}

// HybridSearch fuses full-text and vector candidates into one ranked list.
// Both sub-searches overfetch 2x the limit and run concurrently; a failed
// embedding degrades to text-only results rather than failing the request.
func (s *searchService) HybridSearch(ctx context.Context, req HybridSearchRequest) ([]models.HybridResult, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}

	fetch := req.Limit * overfetchFactor

	var (
		textResults     []models.SearchResult
		semanticResults []models.SemanticHit
	)

	queryVec, embedErr := s.embedder.EmbedText(ctx, req.Query)
	if embedErr != nil {
		log.Printf("hybrid search: embedding unavailable, using text only: %v", embedErr)
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		textResults, err = s.searchRepo.SearchArticles(models.SearchQuery{
			Query:     req.Query,
			Filters:   req.Filters,
			Limit:     fetch,
			Highlight: true,
		})
		return err
	})
	if embedErr == nil {
		g.Go(func() error {
			var err error
			semanticResults, err = s.searchRepo.SearchByEmbedding(queryVec, fetch, req.Filters, "cosine")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fused := FuseResults(textResults, semanticResults, req, time.Now().UTC())
	return fused, nil
}

func (s *searchService) AutocompleteTitles(prefix string, limit int) ([]models.TitleSuggestion, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.searchRepo.AutocompleteTitles(prefix, limit)
}

// FuseResults merges text and semantic candidate sets. Each side's scores
// are normalized by the maximum observed in its own set, so the top text hit
// maps to 1.0; the divisor falls back to 1.0 only when the set is empty or
// all-zero. The normalized scores are blended by the semantic weight with a
// missing side contributing 0, then multiplied by the recency and featured
// boosts regardless of which side produced the candidate.
func FuseResults(textResults []models.SearchResult, semanticResults []models.SemanticHit, req HybridSearchRequest, now time.Time) []models.HybridResult {
	maxDistance := 0.0
	for _, hit := range semanticResults {
		if hit.Distance > maxDistance {
			maxDistance = hit.Distance
		}
	}
	if maxDistance == 0 {
		maxDistance = 1.0
	}

	maxTextScore := 0.0
	for _, res := range textResults {
		if res.Score > maxTextScore {
			maxTextScore = res.Score
		}
	}
	if maxTextScore == 0 {
		maxTextScore = 1.0
	}

	byID := make(map[uint]*models.HybridResult)
	order := make([]uint, 0, len(textResults)+len(semanticResults))

	for _, res := range textResults {
		textScore := res.Score / maxTextScore
		byID[res.ID] = &models.HybridResult{
			ID:            res.ID,
			Slug:          res.Slug,
			Title:         res.Title,
			Summary:       res.Summary,
			PublishedAt:   res.PublishedAt,
			IsFeatured:    res.IsFeatured,
			TextScore:     textScore,
			CombinedScore: (1.0 - req.SemanticWeight) * textScore,
		}
		order = append(order, res.ID)
	}

	for _, hit := range semanticResults {
		semanticScore := 1.0 - hit.Distance/maxDistance
		if existing, ok := byID[hit.ID]; ok {
			existing.SemanticScore = semanticScore
			existing.CombinedScore += req.SemanticWeight * semanticScore
			continue
		}
		byID[hit.ID] = &models.HybridResult{
			ID:            hit.ID,
			Slug:          hit.Slug,
			Title:         hit.Title,
			Summary:       hit.Summary,
			PublishedAt:   hit.PublishedAt,
			IsFeatured:    hit.IsFeatured,
			SemanticScore: semanticScore,
			CombinedScore: req.SemanticWeight * semanticScore,
		}
		order = append(order, hit.ID)
	}

	recentThreshold := now.AddDate(0, 0, -recentWindowDays)

	for _, id := range order {
		item := byID[id]

		if req.RecencyBoost && item.PublishedAt != nil && item.PublishedAt.After(recentThreshold) {
			daysOld := int(now.Sub(*item.PublishedAt).Hours() / 24)
			factor := float64(recentWindowDays-daysOld) / recentWindowDays * maxRecencyBoost
			if factor < 0 {
				factor = 0
			}
			item.CombinedScore *= 1.0 + factor
			item.RecencyBoost = factor
		}

		if req.FeaturedBoost && item.IsFeatured {
			item.CombinedScore *= featuredMultiplier
			item.FeaturedBoost = featuredMultiplier - 1.0
		}
	}

	results := make([]models.HybridResult, 0, len(order))
	for _, id := range order {
		results = append(results, *byID[id])
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CombinedScore > results[j].CombinedScore
	})

	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results
}
