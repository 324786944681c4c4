package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedCategory struct {
	Name        string
	DisplayName string
	Type        string
}

type seedItem struct {
	Name        string
	Type        string
	Category    string // category name, resolved to an id at seed time
	Description string
}

var defaultCategories = []seedCategory{
	{Name: "vegetables", DisplayName: "Овощи", Type: "safe"},
	{Name: "fruits", DisplayName: "Фрукты", Type: "safe"},
	{Name: "grains", DisplayName: "Злаки и крупы", Type: "safe"},
	{Name: "proteins", DisplayName: "Белковые продукты", Type: "safe"},
	{Name: "citrus", DisplayName: "Цитрусовые", Type: "dangerous"},
	{Name: "sweets", DisplayName: "Сладости и шоколад", Type: "dangerous"},
	{Name: "raw", DisplayName: "Сырые и вредные", Type: "dangerous"},
	{Name: "drinks", DisplayName: "Напитки", Type: "dangerous"},
}

var defaultItems = []seedItem{
	{Name: "Морковь", Type: "safe", Category: "vegetables", Description: "Источник витамина A, давать небольшими кусочками"},
	{Name: "Огурец", Type: "safe", Category: "vegetables", Description: "Можно часто, много воды"},
	{Name: "Брокколи", Type: "safe", Category: "vegetables", Description: "Только в отварном виде"},
	{Name: "Яблоко", Type: "safe", Category: "fruits", Description: "Без косточек, они содержат синильную кислоту"},
	{Name: "Банан", Type: "safe", Category: "fruits", Description: "Спелый, небольшими порциями"},
	{Name: "Груша", Type: "safe", Category: "fruits", Description: "Без косточек, изредка"},
	{Name: "Овсянка", Type: "safe", Category: "grains", Description: "Сухая или запаренная, без сахара"},
	{Name: "Рис", Type: "safe", Category: "grains", Description: "Отварной, без соли"},
	{Name: "Гречка", Type: "safe", Category: "grains", Description: "Отварная или запаренная"},
	{Name: "Отварная курица", Type: "safe", Category: "proteins", Description: "Без соли и специй, 1-2 раза в неделю"},
	{Name: "Варёное яйцо", Type: "safe", Category: "proteins", Description: "Белок и желток, небольшими порциями"},
	{Name: "Апельсин", Type: "dangerous", Category: "citrus", Description: "d-лимонен в цедре опасен для самцов"},
	{Name: "Лимон", Type: "dangerous", Category: "citrus", Description: "Слишком кислый, раздражает желудок"},
	{Name: "Шоколад", Type: "dangerous", Category: "sweets", Description: "Теобромин токсичен для крыс"},
	{Name: "Конфеты", Type: "dangerous", Category: "sweets", Description: "Сахар вреден, риск диабета"},
	{Name: "Сырой картофель", Type: "dangerous", Category: "raw", Description: "Содержит соланин"},
	{Name: "Сырая фасоль", Type: "dangerous", Category: "raw", Description: "Лектины разрушаются только при варке"},
	{Name: "Лук", Type: "dangerous", Category: "raw", Description: "Вызывает анемию"},
	{Name: "Газировка", Type: "dangerous", Category: "drinks", Description: "Крысы не умеют отрыгивать газы"},
	{Name: "Алкоголь", Type: "dangerous", Category: "drinks", Description: "Токсичен в любых количествах"},
}

// Seed inserts the default categories and items if they are absent.
// Categories go first and must all land before item seeding starts, so
// every item can resolve its category id; a failure at any step aborts
// the seed. Re-running is a no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, cat := range defaultCategories {
		_, err := pool.Exec(ctx, `
			INSERT INTO categories (name, display_name, type)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING
		`, cat.Name, cat.DisplayName, cat.Type)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.Name, err)
		}
	}

	categoryIDs, err := loadCategoryIDs(ctx, pool)
	if err != nil {
		return err
	}

	seeded := 0
	for _, item := range defaultItems {
		var categoryID *int64
		if id, ok := categoryIDs[item.Category]; ok {
			categoryID = &id
		}

		tag, err := pool.Exec(ctx, `
			INSERT INTO custom_food_items (name, type, category_id, description)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (
				SELECT 1 FROM custom_food_items WHERE name = $1 AND type = $2
			)
		`, item.Name, item.Type, categoryID, item.Description)
		if err != nil {
			return fmt.Errorf("failed to seed item %q: %w", item.Name, err)
		}
		seeded += int(tag.RowsAffected())
	}

	if seeded > 0 {
		log.Printf("Seeded %d default food items", seeded)
	}
	return nil
}

func loadCategoryIDs(ctx context.Context, pool *pgxpool.Pool) (map[string]int64, error) {
	rows, err := pool.Query(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("failed to load category ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan category id: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}
