package routes

import (
	"github.com/gin-gonic/gin"

	"ratguide/internal/handlers"
)

type CategoryRoutes struct {
	handler *handlers.CategoryHandler
}

func NewCategoryRoutes(handler *handlers.CategoryHandler) *CategoryRoutes {
	return &CategoryRoutes{handler: handler}
}

func (r *CategoryRoutes) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", r.handler.ListCategories)
		categories.GET("/:type", r.handler.ListCategoriesByType)
		categories.POST("", r.handler.CreateCategory)
	}
}
