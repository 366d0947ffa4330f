package repository

import (
	"context"
	"encoding/json"
	"testing"

	"orbi-food/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewMenuRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("ListByShop orders by sort then name", func(t *testing.T) {
		resetTables(t, pool)

		bodies := []model.Body{
			{"id": "m1", "name": "Zucchini", "sort": json.Number("1")},
			{"id": "m2", "name": "Apple", "sort": json.Number("2")},
			{"id": "m3", "name": "Banana", "sort": json.Number("1")},
			{"id": "m4", "name": "Coffee"},
		}
		for _, b := range bodies {
			require.NoError(t, repo.Create(ctx, model.NewMenuItemInput("s1", b)))
		}
		require.NoError(t, repo.Create(ctx, model.NewMenuItemInput("s2", model.Body{"id": "m1", "name": "Other shop"})))

		items, err := repo.ListByShop(ctx, "s1")
		require.NoError(t, err)

		names := make([]string, len(items))
		for i, it := range items {
			names[i] = *it.Name
			assert.Equal(t, "s1", it.ShopID)
		}
		assert.Equal(t, []string{"Coffee", "Banana", "Zucchini", "Apple"}, names)
		assert.True(t, *items[0].Available)
		assert.Equal(t, int64(0), *items[0].Sort)
	})

	t.Run("ListByShop unknown shop returns empty slice", func(t *testing.T) {
		resetTables(t, pool)

		items, err := repo.ListByShop(ctx, "nope")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Update is scoped by id and shop", func(t *testing.T) {
		resetTables(t, pool)

		require.NoError(t, repo.Create(ctx, model.NewMenuItemInput("s1", model.Body{"id": "m1", "name": "Pho", "price": json.Number("30")})))

		affected, err := repo.Update(ctx, model.UpdateMenuItemInput("s2", "m1", model.Body{"name": "Wrong shop"}))
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		affected, err = repo.Update(ctx, model.UpdateMenuItemInput("s1", "m1", model.Body{
			"name": "Pho Bo", "price": json.Number("35"), "available": false, "currency": "LAK",
		}))
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		items, err := repo.ListByShop(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Pho Bo", *items[0].Name)
		assert.Equal(t, float64(35), *items[0].Price)
		assert.False(t, *items[0].Available)
		assert.Equal(t, "LAK", *items[0].Currency)
	})

	t.Run("Delete non-matching pair affects zero rows", func(t *testing.T) {
		resetTables(t, pool)

		require.NoError(t, repo.Create(ctx, model.NewMenuItemInput("s1", model.Body{"id": "m1", "name": "Pho"})))

		affected, err := repo.Delete(ctx, "s2", "m1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		affected, err = repo.Delete(ctx, "s1", "m1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Create duplicate pair returns conflict", func(t *testing.T) {
		resetTables(t, pool)

		in := model.NewMenuItemInput("s1", model.Body{"id": "m1", "name": "Pho"})
		require.NoError(t, repo.Create(ctx, in))
		assert.ErrorIs(t, repo.Create(ctx, in), model.ErrMenuItemExists)
	})
}
