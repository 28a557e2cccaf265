package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/internal/model"
	"github.com/forkful/recipe-api/internal/query"
)

// listOrder is the canonical listing order: best-rated first, unrated rows
// last, id as the tie-break so pages stay disjoint and stable.
const listOrder = "rating DESC NULLS LAST, id ASC"

const (
	// DefaultPageSize is used when the caller omits limit.
	DefaultPageSize = 10

	// DefaultMaxPageSize caps limit when no cap is configured.
	DefaultMaxPageSize = 100

	listCacheTTL = time.Minute
)

// RecipeService serves the read-only listing and search operations.
type RecipeService struct {
	db      *gorm.DB
	cache   *redis.Client // optional; nil disables the page cache
	maxPage int
}

// NewRecipeService creates a new RecipeService instance. cache may be nil.
func NewRecipeService(db *gorm.DB, cache *redis.Client, maxPageSize int) *RecipeService {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &RecipeService{db: db, cache: cache, maxPage: maxPageSize}
}

// ListResult is one page of the unfiltered listing.
type ListResult struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
	Data  []model.Recipe `json:"data"`
}

// List returns one page of recipes in canonical order plus the exact
// total row count. Out-of-range page and limit values are clamped, not
// rejected. Pages are served from the cache when one is configured; the
// dataset is read-only, so expiry is the only invalidation needed.
func (s *RecipeService) List(ctx context.Context, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > s.maxPage {
		limit = s.maxPage
	}

	cacheKey := fmt.Sprintf("recipes:list:%d:%d", page, limit)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached ListResult
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			log.Printf("recipe list cache read: %v", err)
		}
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting recipes: %w", err)
	}

	recipes := make([]model.Recipe, 0, limit)
	err := s.db.WithContext(ctx).
		Order(listOrder).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	result := &ListResult{Page: page, Limit: limit, Total: total, Data: recipes}
	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, listCacheTTL).Err(); err != nil {
				log.Printf("recipe list cache write: %v", err)
			}
		}
	}
	return result, nil
}

// Search returns every recipe matching the filters, in canonical order.
// The result is intentionally unpaginated: the calories predicate is only
// evaluable after the fetch, so a page-limited fetch could not produce a
// correct page or total. Result size is bounded by the dataset, which is
// seeded once and stays small.
func (s *RecipeService) Search(ctx context.Context, filters query.SearchFilters) ([]model.Recipe, error) {
	dbQuery := filters.Pushdown(s.db.WithContext(ctx).Model(&model.Recipe{}))

	var recipes []model.Recipe
	if err := dbQuery.Order(listOrder).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("searching recipes: %w", err)
	}

	if cmp, ok := filters.Residual(); ok {
		recipes = query.FilterByCalories(recipes, cmp)
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}
