package routes

import (
	"github.com/gin-gonic/gin"

	"ratguide/internal/handlers"
)

type FoodItemRoutes struct {
	handler *handlers.FoodItemHandler
}

func NewFoodItemRoutes(handler *handlers.FoodItemHandler) *FoodItemRoutes {
	return &FoodItemRoutes{handler: handler}
}

func (r *FoodItemRoutes) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.GET("", r.handler.ListItems)
		items.GET("/grouped", r.handler.ListItemsGrouped)
		items.GET("/category/:categoryId", r.handler.ListItemsByCategory)
		items.POST("", r.handler.CreateItem)
		items.DELETE("/type/:type", r.handler.DeleteItemsByType)
		items.DELETE("/:id", r.handler.DeleteItem)
	}
}
