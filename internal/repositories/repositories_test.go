package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratguide/internal/apperrors"
	"ratguide/internal/database"
	"ratguide/internal/models"
	"ratguide/internal/repositories"
	"ratguide/internal/testdb"
)

func TestRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}

	pool := testdb.Start(t)
	ctx := context.Background()

	categoryRepo := repositories.NewCategoryRepository(pool)
	itemRepo := repositories.NewFoodItemRepository(pool)

	mustCategory := func(t *testing.T, name, displayName, categoryType string) models.Category {
		t.Helper()
		category := models.Category{Name: name, DisplayName: displayName, Type: categoryType}
		require.NoError(t, categoryRepo.Create(ctx, &category))
		require.NotZero(t, category.ID)
		require.False(t, category.CreatedAt.IsZero())
		return category
	}

	mustItem := func(t *testing.T, name, itemType string, categoryID *int64) models.FoodItem {
		t.Helper()
		item := models.FoodItem{Name: name, Type: itemType, CategoryID: categoryID}
		require.NoError(t, itemRepo.Create(ctx, &item))
		require.NotZero(t, item.ID)
		return item
	}

	t.Run("list categories ordered by type then display name", func(t *testing.T) {
		testdb.Reset(t, pool)

		mustCategory(t, "fruits", "Фрукты", "safe")
		mustCategory(t, "citrus", "Цитрусовые", "dangerous")
		mustCategory(t, "vegetables", "Овощи", "safe")
		mustCategory(t, "sweets", "Сладости", "dangerous")

		all, err := categoryRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)

		names := make([]string, 0, len(all))
		for _, c := range all {
			names = append(names, c.Name)
		}
		// 'dangerous' sorts before 'safe'; display names are Cyrillic,
		// Сладости < Цитрусовые and Овощи < Фрукты.
		assert.Equal(t, []string{"sweets", "citrus", "vegetables", "fruits"}, names)
	})

	t.Run("list categories by type filters and sorts", func(t *testing.T) {
		testdb.Reset(t, pool)

		mustCategory(t, "fruits", "Фрукты", "safe")
		mustCategory(t, "vegetables", "Овощи", "safe")
		mustCategory(t, "citrus", "Цитрусовые", "dangerous")

		safe, err := categoryRepo.ListByType(ctx, "safe")
		require.NoError(t, err)
		require.Len(t, safe, 2)
		for _, c := range safe {
			assert.Equal(t, "safe", c.Type)
		}
		assert.Equal(t, "Овощи", safe[0].DisplayName)
		assert.Equal(t, "Фрукты", safe[1].DisplayName)

		dangerous, err := categoryRepo.ListByType(ctx, "dangerous")
		require.NoError(t, err)
		require.Len(t, dangerous, 1)
		assert.Equal(t, "citrus", dangerous[0].Name)
	})

	t.Run("duplicate category name reports duplicate key and changes nothing", func(t *testing.T) {
		testdb.Reset(t, pool)

		mustCategory(t, "vegetables", "Овощи", "safe")

		dup := models.Category{Name: "vegetables", DisplayName: "Другие овощи", Type: "dangerous"}
		err := categoryRepo.Create(ctx, &dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)

		all, err := categoryRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Овощи", all[0].DisplayName)
		assert.Equal(t, "safe", all[0].Type)
	})

	t.Run("create then delete restores the prior item set", func(t *testing.T) {
		testdb.Reset(t, pool)

		mustItem(t, "Морковь", "safe", nil)
		before, err := itemRepo.List(ctx)
		require.NoError(t, err)

		created := mustItem(t, "Тест", "safe", nil)
		require.NoError(t, itemRepo.Delete(ctx, created.ID))

		after, err := itemRepo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("delete of a missing item reports not found and changes nothing", func(t *testing.T) {
		testdb.Reset(t, pool)

		mustItem(t, "Морковь", "safe", nil)

		err := itemRepo.Delete(ctx, 424242)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		items, err := itemRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("list joins category display name, newest first", func(t *testing.T) {
		testdb.Reset(t, pool)

		vegetables := mustCategory(t, "vegetables", "Овощи", "safe")
		mustItem(t, "Морковь", "safe", &vegetables.ID)
		mustItem(t, "Хлеб", "safe", nil)
		dangling := int64(9999)
		mustItem(t, "Загадка", "dangerous", &dangling)

		items, err := itemRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)

		// Descending creation order: last insert first.
		assert.Equal(t, "Загадка", items[0].Name)
		assert.Nil(t, items[0].CategoryName)
		assert.Equal(t, "Хлеб", items[1].Name)
		assert.Nil(t, items[1].CategoryName)
		assert.Equal(t, "Морковь", items[2].Name)
		require.NotNil(t, items[2].CategoryName)
		assert.Equal(t, "Овощи", *items[2].CategoryName)
	})

	t.Run("list by category ignores unmatched ids", func(t *testing.T) {
		testdb.Reset(t, pool)

		vegetables := mustCategory(t, "vegetables", "Овощи", "safe")
		mustItem(t, "Морковь", "safe", &vegetables.ID)
		mustItem(t, "Огурец", "safe", &vegetables.ID)

		items, err := itemRepo.ListByCategory(ctx, vegetables.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Огурец", items[0].Name)
		assert.Equal(t, "Морковь", items[1].Name)

		none, err := itemRepo.ListByCategory(ctx, 777777)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("grouped listing partitions every item exactly once", func(t *testing.T) {
		testdb.Reset(t, pool)

		vegetables := mustCategory(t, "vegetables", "Овощи", "safe")
		citrus := mustCategory(t, "citrus", "Цитрусовые", "dangerous")

		mustItem(t, "Морковь", "safe", &vegetables.ID)
		mustItem(t, "Огурец", "safe", &vegetables.ID)
		mustItem(t, "Лимон", "dangerous", &citrus.ID)
		mustItem(t, "Хлеб", "safe", nil)
		dangling := int64(31337)
		mustItem(t, "Фантом", "safe", &dangling)

		grouped, err := itemRepo.ListGrouped(ctx)
		require.NoError(t, err)

		// Joined order: dangerous categories first (alphabetical type),
		// then safe ones, uncategorized last because the join yields
		// null category columns there.
		assert.Equal(t, []string{"citrus", "vegetables", models.UncategorizedKey}, grouped.Keys())

		citrusGroup := grouped.Group("citrus")
		require.NotNil(t, citrusGroup)
		assert.Equal(t, "Цитрусовые", citrusGroup.CategoryName)
		assert.Equal(t, "dangerous", citrusGroup.CategoryType)
		require.Len(t, citrusGroup.Items, 1)

		vegGroup := grouped.Group("vegetables")
		require.NotNil(t, vegGroup)
		require.Len(t, vegGroup.Items, 2)
		assert.Equal(t, "Огурец", vegGroup.Items[0].Name)
		assert.Equal(t, "Морковь", vegGroup.Items[1].Name)

		// Null and dangling references both land in the uncategorized
		// bucket with the default labels.
		uncat := grouped.Group(models.UncategorizedKey)
		require.NotNil(t, uncat)
		assert.Equal(t, models.UncategorizedName, uncat.CategoryName)
		assert.Equal(t, "safe", uncat.CategoryType)
		require.Len(t, uncat.Items, 2)

		flat, err := itemRepo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(flat), grouped.TotalItems())
	})

	t.Run("delete by type removes all and only that type", func(t *testing.T) {
		testdb.Reset(t, pool)

		mustItem(t, "Морковь", "safe", nil)
		mustItem(t, "Шоколад", "dangerous", nil)
		mustItem(t, "Лимон", "dangerous", nil)

		deleted, err := itemRepo.DeleteByType(ctx, "dangerous")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		remaining, err := itemRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "Морковь", remaining[0].Name)

		// Nothing left to delete is still a success.
		deleted, err = itemRepo.DeleteByType(ctx, "dangerous")
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("seed is sequential and idempotent", func(t *testing.T) {
		testdb.Reset(t, pool)

		require.NoError(t, database.Seed(ctx, pool))

		categories, err := categoryRepo.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, categories)

		items, err := itemRepo.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		// Every seeded item resolves its category: the seed completes
		// all category inserts before touching items.
		for _, item := range items {
			require.NotNil(t, item.CategoryID, "seeded item %q has no category", item.Name)
			assert.NotNil(t, item.CategoryName, "seeded item %q references a missing category", item.Name)
		}

		// A second run inserts nothing new.
		require.NoError(t, database.Seed(ctx, pool))

		categoriesAgain, err := categoryRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, categoriesAgain, len(categories))

		itemsAgain, err := itemRepo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, itemsAgain, len(items))
	})
}
