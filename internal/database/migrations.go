package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createCategoriesTable,
		createFoodItemsTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  display_name TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('safe', 'dangerous')),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_categories_type ON categories(type);
`

// category_id is deliberately not a foreign key: items keep working
// when their category reference is null or dangles, and the grouped
// listing resolves such items into the uncategorized bucket.
const createFoodItemsTable = `
CREATE TABLE IF NOT EXISTS custom_food_items (
  id SERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('safe', 'dangerous')),
  category_id INTEGER,
  description TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_custom_food_items_category_id ON custom_food_items(category_id);
CREATE INDEX IF NOT EXISTS idx_custom_food_items_type ON custom_food_items(type);
CREATE INDEX IF NOT EXISTS idx_custom_food_items_created_at ON custom_food_items(created_at);
`
