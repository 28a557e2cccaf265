package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/router"
	"github.com/forkful/recipe-api/internal/service"
)

// Server wires the HTTP stack over an injected store handle. The store
// is opened by the caller and closed by the caller; the server never
// owns connection lifecycle beyond its own listener.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance. cache may be nil.
func New(cfg *config.Config, db *gorm.DB, cache *redis.Client) *Server {
	recipeService := service.NewRecipeService(db, cache, cfg.MaxPageSize)
	recipeHandler := api.NewRecipeHandler(recipeService)

	r := router.Setup(recipeHandler)

	return &Server{
		router: r,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: r,
		},
	}
}

// Start serves HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
