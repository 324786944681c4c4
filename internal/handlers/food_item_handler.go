package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ratguide/internal/apperrors"
	"ratguide/internal/models"
	"ratguide/internal/responses"
	"ratguide/internal/services"
)

type FoodItemHandler struct {
	itemService *services.FoodItemService
}

func NewFoodItemHandler(itemService *services.FoodItemService) *FoodItemHandler {
	return &FoodItemHandler{itemService: itemService}
}

type itemCreatedResponse struct {
	models.FoodItem
	Message string `json:"message"`
}

// ListItems handles GET /api/items
func (h *FoodItemHandler) ListItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListItemsByCategory handles GET /api/items/category/:categoryId
func (h *FoodItemHandler) ListItemsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		responses.FromError(c, apperrors.InvalidArgument("Идентификатор категории должен быть числом"))
		return
	}

	items, err := h.itemService.ListItemsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListItemsGrouped handles GET /api/items/grouped
func (h *FoodItemHandler) ListItemsGrouped(c *gin.Context) {
	grouped, err := h.itemService.ListItemsGrouped(c.Request.Context())
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, grouped)
}

// CreateItem handles POST /api/items
func (h *FoodItemHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.FromError(c, apperrors.InvalidArgument("Некорректное тело запроса"))
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, itemCreatedResponse{
		FoodItem: *item,
		Message:  "Продукт успешно добавлен!",
	})
}

// DeleteItem handles DELETE /api/items/:id
func (h *FoodItemHandler) DeleteItem(c *gin.Context) {
	// A non-numeric id cannot match any row, same outcome as a missing one.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.FromError(c, apperrors.NotFound("Продукт не найден"))
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Продукт успешно удален!"})
}

// DeleteItemsByType handles DELETE /api/items/type/:type
func (h *FoodItemHandler) DeleteItemsByType(c *gin.Context) {
	deleted, err := h.itemService.DeleteItemsByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Продукты успешно удалены!",
		"deletedCount": deleted,
	})
}
