package services

import (
	"context"

	"ratguide/internal/apperrors"
	"ratguide/internal/models"
	"ratguide/internal/repositories"
)

type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

func NewCategoryService(categoryRepo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) ListCategoriesByType(ctx context.Context, categoryType string) ([]models.Category, error) {
	if !models.IsValidFoodType(categoryType) {
		return nil, apperrors.InvalidArgument("Тип должен быть 'safe' или 'dangerous'")
	}

	return s.categoryRepo.ListByType(ctx, categoryType)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" || req.DisplayName == "" || req.Type == "" {
		return nil, apperrors.InvalidArgument("Название, отображаемое имя и тип обязательны")
	}
	if !models.IsValidFoodType(req.Type) {
		return nil, apperrors.InvalidArgument("Тип должен быть 'safe' или 'dangerous'")
	}

	category := &models.Category{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Type:        req.Type,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
