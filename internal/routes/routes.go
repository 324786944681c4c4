package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"ratguide/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, categoryHandler *handlers.CategoryHandler, itemHandler *handlers.FoodItemHandler, staticDir string) {
	api := router.Group("/api")

	categoryRoutes := NewCategoryRoutes(categoryHandler)
	categoryRoutes.RegisterRoutes(api)

	itemRoutes := NewFoodItemRoutes(itemHandler)
	itemRoutes.RegisterRoutes(api)

	if staticDir != "" {
		router.StaticFile("/", filepath.Join(staticDir, "index.html"))
		// Everything that is not an API route falls through to the
		// static guide assets (script.js, styles, service worker).
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}
}
