package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/forkful/recipe-api/internal/query"
	"github.com/forkful/recipe-api/internal/service"
)

// RecipeHandler exposes the public recipe listing endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes", h.ListRecipes)
	router.GET("/recipes/search", h.SearchRecipes)
}

// ListRecipes handles GET /api/recipes?page=&limit=.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", service.DefaultPageSize)

	result, err := h.recipes.List(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("list recipes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchRecipes handles GET /api/recipes/search. Every parameter is
// optional; malformed numeric filters are dropped rather than rejected,
// so a typo'd value widens the result instead of failing the request.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	filters := query.SearchFilters{
		Title:     c.Query("title"),
		Cuisine:   c.Query("cuisine"),
		Serves:    c.Query("serves"),
		Rating:    c.Query("rating"),
		TotalTime: c.Query("total_time"),
		PrepTime:  c.Query("prep_time"),
		CookTime:  c.Query("cook_time"),
		Calories:  c.Query("calories"),
	}

	recipes, err := h.recipes.Search(c.Request.Context(), filters)
	if err != nil {
		log.Printf("search recipes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": recipes})
}

// intQuery reads a positive integer query parameter, falling back on
// absent, malformed, or non-positive input.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
