package repositories

import (
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"blog-backend/models"
)

// filterColumns whitelists the article attributes accepted as equality
// filters on search queries.
var filterColumns = map[string]bool{
	"status":      true,
	"author_id":   true,
	"category_id": true,
	"is_featured": true,
	"slug":        true,
}

// distanceOperators maps a metric name to the pgvector comparison operator.
// The operator must match the index operator class (vector_cosine_ops etc.),
// otherwise the planner falls back to a sequential scan.
var distanceOperators = map[string]string{
	"cosine": "<=>",
	"l2":     "<->",
	"ip":     "<#>",
}

const featuredBoost = 0.2

type SearchRepository interface {
	SearchArticles(q models.SearchQuery) ([]models.SearchResult, error)
	SearchByEmbedding(vec []float32, limit int, filters map[string]interface{}, metric string) ([]models.SemanticHit, error)
	AutocompleteTitles(prefix string, limit int) ([]models.TitleSuggestion, error)
	UpdateSearchVector(articleID uint) error
	UpdateAllSearchVectors() (int64, error)
	UpdateEmbedding(articleID uint, vec []float32) error
	ArticlesWithoutEmbedding(limit int) ([]models.Article, error)
}

type searchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) SearchRepository {
	return &searchRepository{db: db}
}

// SearchArticles runs a websearch-style full-text query ranked by
// ts_rank_cd with length normalization 32, plus additive recency and
// featured boosts. When the full-text query matches nothing and a query
// string was supplied, it falls back to trigram similarity.
func (r *searchRepository) SearchArticles(q models.SearchQuery) ([]models.SearchResult, error) {
	var (
		where []string
		args  []interface{}
		from  = "articles a"
		rank  = "0.0"
	)

	hlTitle := "a.title"
	hlSummary := "COALESCE(a.summary, '')"

	if q.Query != "" {
		from = "articles a, websearch_to_tsquery('simple', unaccent(?)) query"
		args = append(args, q.Query)
		where = append(where, "a.search_vector @@ query")
		rank = "ts_rank_cd(a.search_vector, query, 32)"

		if q.Highlight {
			hlTitle = "ts_headline('simple', unaccent(a.title), query," +
				" 'StartSel=<b>,StopSel=</b>,MaxFragments=1,MinWords=2,MaxWords=12')"
			hlSummary = "ts_headline('simple', unaccent(COALESCE(a.summary, '')), query," +
				" 'StartSel=<b>,StopSel=</b>,MaxFragments=2,MinWords=5,MaxWords=25')"
		}
	}

	where = append(where, "a.deleted_at IS NULL")

	filterWhere, filterArgs := buildFilters(q.Filters)
	where = append(where, filterWhere...)
	args = append(args, filterArgs...)

	if q.PublishedFrom != nil {
		where = append(where, "a.published_at >= ?")
		args = append(args, *q.PublishedFrom)
	}
	if q.PublishedTo != nil {
		where = append(where, "a.published_at < ?")
		args = append(args, *q.PublishedTo)
	}

	score := fmt.Sprintf(
		"(%s"+
			" + (1.0 - LEAST(1.0, GREATEST(0.0, EXTRACT(EPOCH FROM (NOW() - COALESCE(a.published_at, NOW()))) / 86400.0))) * 0.15"+
			" + CASE WHEN a.is_featured THEN %v ELSE 0.0 END)",
		rank, featuredBoost)

	sql := fmt.Sprintf(`
		SELECT a.id, a.slug, a.title, %s AS hl_title, COALESCE(a.summary, '') AS summary,
		       %s AS hl_summary, a.published_at, a.is_featured, %s AS score
		FROM %s
		WHERE %s
		ORDER BY score DESC, a.published_at DESC NULLS LAST
		LIMIT ? OFFSET ?`,
		hlTitle, hlSummary, score, from, strings.Join(where, " AND "))
	args = append(args, q.Limit, q.Offset)

	var rows []struct {
		models.SearchResult
		HlTitle   string
		HlSummary string
	}
	if err := r.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}

	results := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		res := row.SearchResult
		if q.Highlight && q.Query != "" {
			res.Title = row.HlTitle
			res.Summary = row.HlSummary
		}
		results = append(results, res)
	}

	if len(results) > 0 || q.Query == "" {
		return results, nil
	}

	return r.fuzzyFallback(q)
}

// fuzzyFallback ranks by trigram similarity, title weighted 0.7 and summary
// 0.3, restricted to case-insensitive substring matches.
func (r *searchRepository) fuzzyFallback(q models.SearchQuery) ([]models.SearchResult, error) {
	where := []string{
		"(a.title ILIKE ? OR a.summary ILIKE ?)",
		"a.deleted_at IS NULL",
	}
	pattern := "%" + q.Query + "%"
	args := []interface{}{q.Query, q.Query, pattern, pattern}

	filterWhere, filterArgs := buildFilters(q.Filters)
	where = append(where, filterWhere...)
	args = append(args, filterArgs...)

	sql := fmt.Sprintf(`
		SELECT a.id, a.slug, a.title, COALESCE(a.summary, '') AS summary,
		       a.published_at, a.is_featured,
		       (similarity(a.title, ?) * 0.7 + similarity(COALESCE(a.summary, ''), ?) * 0.3) AS score
		FROM articles a
		WHERE %s
		ORDER BY score DESC, a.published_at DESC NULLS LAST
		LIMIT ? OFFSET ?`,
		strings.Join(where, " AND "))
	args = append(args, q.Limit, q.Offset)

	var results []models.SearchResult
	if err := r.db.Raw(sql, args...).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("fuzzy search: %w", err)
	}
	return results, nil
}

// SearchByEmbedding returns the nearest articles with a non-NULL embedding
// under the given metric. For "ip" the pgvector operator already negates the
// inner product, so ascending order yields descending inner product. The raw
// operator value is returned as Distance.
func (r *searchRepository) SearchByEmbedding(vec []float32, limit int, filters map[string]interface{}, metric string) ([]models.SemanticHit, error) {
	op, ok := distanceOperators[metric]
	if !ok {
		return nil, fmt.Errorf("unsupported distance metric: %q", metric)
	}

	where := []string{"a.embedding IS NOT NULL", "a.deleted_at IS NULL"}

	filterWhere, filterArgs := buildFilters(filters)
	where = append(where, filterWhere...)

	sql := fmt.Sprintf(`
		SELECT a.id, a.slug, a.title, COALESCE(a.summary, '') AS summary,
		       a.published_at, a.is_featured, (a.embedding %s ?) AS distance
		FROM articles a
		WHERE %s
		ORDER BY distance ASC
		LIMIT ?`,
		op, strings.Join(where, " AND "))

	args := []interface{}{pgvector.NewVector(vec)}
	args = append(args, filterArgs...)
	args = append(args, limit)

	var hits []models.SemanticHit
	if err := r.db.Raw(sql, args...).Scan(&hits).Error; err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	return hits, nil
}

// AutocompleteTitles is an indexed prefix scan over lower(title).
func (r *searchRepository) AutocompleteTitles(prefix string, limit int) ([]models.TitleSuggestion, error) {
	var suggestions []models.TitleSuggestion
	err := r.db.Raw(`
		SELECT a.slug, a.title
		FROM articles a
		WHERE lower(a.title) LIKE lower(?) || '%' AND a.deleted_at IS NULL
		ORDER BY a.published_at DESC NULLS LAST
		LIMIT ?`,
		prefix, limit).Scan(&suggestions).Error
	if err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	return suggestions, nil
}

const searchVectorExpr = `
	setweight(to_tsvector('simple', unaccent(coalesce(title, ''))), 'A') ||
	setweight(to_tsvector('simple', unaccent(coalesce(summary, ''))), 'B') ||
	setweight(to_tsvector('simple', unaccent(coalesce(content, ''))), 'C')`

// UpdateSearchVector recomputes the weighted tsvector for one article. The
// column is not generated, so this must run after every content mutation.
func (r *searchRepository) UpdateSearchVector(articleID uint) error {
	return r.db.Exec(
		"UPDATE articles SET search_vector = "+searchVectorExpr+" WHERE id = ?",
		articleID,
	).Error
}

// UpdateAllSearchVectors recomputes every article's search vector and
// reports how many rows were touched.
func (r *searchRepository) UpdateAllSearchVectors() (int64, error) {
	res := r.db.Exec("UPDATE articles SET search_vector = " + searchVectorExpr)
	return res.RowsAffected, res.Error
}

func (r *searchRepository) UpdateEmbedding(articleID uint, vec []float32) error {
	return r.db.Exec(
		"UPDATE articles SET embedding = ? WHERE id = ?",
		pgvector.NewVector(vec), articleID,
	).Error
}

func (r *searchRepository) ArticlesWithoutEmbedding(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("embedding IS NULL").Order("id").Limit(limit).Find(&articles).Error
	return articles, err
}

// buildFilters turns a whitelisted filter map into WHERE fragments. Unknown
// keys and nil values are ignored.
func buildFilters(filters map[string]interface{}) ([]string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	for key, value := range filters {
		if value == nil || !filterColumns[key] {
			continue
		}
		where = append(where, fmt.Sprintf("a.%s = ?", key))
		args = append(args, value)
	}
	return where, args
}
