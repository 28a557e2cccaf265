package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/middleware"
)

// Setup configures the application routes
func Setup(recipeHandler *api.RecipeHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	apiGroup := router.Group("/api")

	apiGroup.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	recipeHandler.RegisterRoutes(apiGroup)

	return router
}
