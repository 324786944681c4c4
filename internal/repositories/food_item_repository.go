package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"ratguide/internal/apperrors"
	"ratguide/internal/models"
)

type FoodItemRepository struct {
	pool *pgxpool.Pool
}

func NewFoodItemRepository(pool *pgxpool.Pool) *FoodItemRepository {
	return &FoodItemRepository{pool: pool}
}

// List returns every item with its category's display name (null for
// uncategorized or dangling references), newest first.
func (r *FoodItemRepository) List(ctx context.Context) ([]models.FoodItemWithCategory, error) {
	query := `
		SELECT i.id, i.name, i.type, i.category_id, i.description, i.created_at,
		       c.display_name
		FROM custom_food_items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.created_at DESC, i.id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.FoodItemWithCategory{}
	for rows.Next() {
		var item models.FoodItemWithCategory
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Type,
			&item.CategoryID,
			&item.Description,
			&item.CreatedAt,
			&item.CategoryName,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListByCategory returns items referencing categoryID, newest first.
// There is no existence check: an unmatched id yields an empty slice.
func (r *FoodItemRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.FoodItem, error) {
	query := `
		SELECT id, name, type, category_id, description, created_at
		FROM custom_food_items
		WHERE category_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.FoodItem{}
	for rows.Next() {
		var item models.FoodItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Type,
			&item.CategoryID,
			&item.Description,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListGrouped partitions all items by category. Rows come back ordered
// by category type, then category display name, then item recency, and
// groups are built in first-seen order, so both group order and item
// order within each group are stable. Items with a null or dangling
// category land under the uncategorized key, which the join sorts last
// (null category columns).
func (r *FoodItemRepository) ListGrouped(ctx context.Context) (*models.GroupedItems, error) {
	query := `
		SELECT i.id, i.name, i.type, i.category_id, i.description, i.created_at,
		       c.name, c.display_name, c.type
		FROM custom_food_items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY c.type, c.display_name, i.created_at DESC, i.id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := models.NewGroupedItems()
	for rows.Next() {
		var item models.FoodItem
		var categoryKey, categoryName, categoryType *string
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Type,
			&item.CategoryID,
			&item.Description,
			&item.CreatedAt,
			&categoryKey,
			&categoryName,
			&categoryType,
		)
		if err != nil {
			return nil, err
		}

		if categoryKey == nil {
			grouped.Add(models.UncategorizedKey, models.UncategorizedName, models.TypeSafe, item)
			continue
		}
		grouped.Add(*categoryKey, *categoryName, *categoryType, item)
	}

	return grouped, rows.Err()
}

// Create inserts item and fills in its assigned id and timestamp. The
// category reference, if any, is stored as given without validation.
func (r *FoodItemRepository) Create(ctx context.Context, item *models.FoodItem) error {
	query := `
		INSERT INTO custom_food_items (name, type, category_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Type,
		item.CategoryID,
		item.Description,
	).Scan(&item.ID, &item.CreatedAt)
}

// Delete removes the item with the given id, reporting
// apperrors.ErrNotFound when no row matched.
func (r *FoodItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM custom_food_items WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(fmt.Sprintf("Продукт с id %d не найден", id))
	}

	return nil
}

// DeleteByType removes every item of the given type and returns how
// many rows went away. Zero matches is a success, not an error.
func (r *FoodItemRepository) DeleteByType(ctx context.Context, itemType string) (int64, error) {
	query := `DELETE FROM custom_food_items WHERE type = $1`

	tag, err := r.pool.Exec(ctx, query, itemType)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
