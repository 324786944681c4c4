package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ratguide/internal/apperrors"
	"ratguide/internal/models"
	"ratguide/internal/responses"
	"ratguide/internal/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryCreatedResponse struct {
	models.Category
	Message string `json:"message"`
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListCategoriesByType handles GET /api/categories/:type
func (h *CategoryHandler) ListCategoriesByType(c *gin.Context) {
	categories, err := h.categoryService.ListCategoriesByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.FromError(c, apperrors.InvalidArgument("Некорректное тело запроса"))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, categoryCreatedResponse{
		Category: *category,
		Message:  "Категория успешно добавлена!",
	})
}
