package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ratguide/internal/apperrors"
	"ratguide/internal/models"
)

const pgUniqueViolation = "23505"

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List returns every category ordered by type, then display name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, display_name, type, created_at
		FROM categories
		ORDER BY type, display_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCategories(rows)
}

// ListByType returns categories of the given type ordered by display name.
func (r *CategoryRepository) ListByType(ctx context.Context, categoryType string) ([]models.Category, error) {
	query := `
		SELECT id, name, display_name, type, created_at
		FROM categories
		WHERE type = $1
		ORDER BY display_name
	`

	rows, err := r.pool.Query(ctx, query, categoryType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCategories(rows)
}

// Create inserts category and fills in its assigned id and timestamp.
// A name collision surfaces as apperrors.ErrDuplicateKey.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, display_name, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		category.Name,
		category.DisplayName,
		category.Type,
	).Scan(&category.ID, &category.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.DuplicateKey(fmt.Sprintf("Категория с ключом '%s' уже существует", category.Name))
		}
		return err
	}

	return nil
}

func scanCategories(rows pgx.Rows) ([]models.Category, error) {
	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.DisplayName,
			&category.Type,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
