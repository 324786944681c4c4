package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"ratguide/internal/config"
	"ratguide/internal/handlers"
	"ratguide/internal/repositories"
	"ratguide/internal/routes"
	"ratguide/internal/services"
)

// New wires repositories, services and handlers around the given pool
// and returns a configured HTTP server. The pool's lifecycle stays with
// the caller.
func New(cfg config.Config, pool *pgxpool.Pool) *http.Server {
	// Dependency injection
	categoryRepo := repositories.NewCategoryRepository(pool)
	itemRepo := repositories.NewFoodItemRepository(pool)
	categoryService := services.NewCategoryService(categoryRepo)
	itemService := services.NewFoodItemService(itemRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	itemHandler := handlers.NewFoodItemHandler(itemService)

	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, categoryHandler, itemHandler, cfg.StaticDir)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// NewRouter builds the gin engine alone, for tests that drive the API
// through httptest without a listening socket.
func NewRouter(cfg config.Config, pool *pgxpool.Pool) *gin.Engine {
	return New(cfg, pool).Handler.(*gin.Engine)
}
