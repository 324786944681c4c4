package services

import (
	"context"

	"ratguide/internal/apperrors"
	"ratguide/internal/models"
	"ratguide/internal/repositories"
)

type FoodItemService struct {
	itemRepo *repositories.FoodItemRepository
}

func NewFoodItemService(itemRepo *repositories.FoodItemRepository) *FoodItemService {
	return &FoodItemService{itemRepo: itemRepo}
}

// CreateItemRequest is the POST /api/items body. CategoryID tolerates
// both numeric and string ids because the web client submits the raw
// value of its category <select>.
type CreateItemRequest struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	CategoryID  *models.FlexID `json:"category_id"`
	Description string         `json:"description"`
}

func (s *FoodItemService) ListItems(ctx context.Context) ([]models.FoodItemWithCategory, error) {
	return s.itemRepo.List(ctx)
}

func (s *FoodItemService) ListItemsByCategory(ctx context.Context, categoryID int64) ([]models.FoodItem, error) {
	return s.itemRepo.ListByCategory(ctx, categoryID)
}

func (s *FoodItemService) ListItemsGrouped(ctx context.Context) (*models.GroupedItems, error) {
	return s.itemRepo.ListGrouped(ctx)
}

// CreateItem validates the request and stores the item. The category
// reference is taken as-is; whether it points at a live category is
// not checked.
func (s *FoodItemService) CreateItem(ctx context.Context, req CreateItemRequest) (*models.FoodItem, error) {
	if req.Name == "" || req.Type == "" {
		return nil, apperrors.InvalidArgument("Название и тип обязательны")
	}
	if !models.IsValidFoodType(req.Type) {
		return nil, apperrors.InvalidArgument("Тип должен быть 'safe' или 'dangerous'")
	}

	item := &models.FoodItem{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	if req.CategoryID != nil && *req.CategoryID != 0 {
		id := int64(*req.CategoryID)
		item.CategoryID = &id
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *FoodItemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *FoodItemService) DeleteItemsByType(ctx context.Context, itemType string) (int64, error) {
	if !models.IsValidFoodType(itemType) {
		return 0, apperrors.InvalidArgument("Тип должен быть 'safe' или 'dangerous'")
	}

	return s.itemRepo.DeleteByType(ctx, itemType)
}
