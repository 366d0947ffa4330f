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

func TestCategoryRepository_List(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCategoryRepository(pool, zerolog.Nop())
	ctx := context.Background()

	resetTables(t, pool)

	_, err := pool.Exec(ctx, `INSERT INTO categories (id, name, icon) VALUES
		('noodles', 'Noodles', '🍜'),
		('coffee', 'Coffee', NULL),
		('bakery', 'Bakery', '🥐')`)
	require.NoError(t, err)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "bakery", categories[0].ID)
	assert.Equal(t, "coffee", categories[1].ID)
	assert.Nil(t, categories[1].Icon)
	assert.Equal(t, "noodles", categories[2].ID)
}

func TestZoneRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewZoneRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Get missing document returns nil", func(t *testing.T) {
		resetTables(t, pool)

		doc, err := repo.Get(ctx, model.ZoneDocumentID)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("Get NULL document returns nil", func(t *testing.T) {
		resetTables(t, pool)

		_, err := pool.Exec(ctx, `INSERT INTO zones (id, data) VALUES ('laos', NULL)`)
		require.NoError(t, err)

		doc, err := repo.Get(ctx, model.ZoneDocumentID)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("Upsert then Get round-trips and replaces", func(t *testing.T) {
		resetTables(t, pool)

		first := json.RawMessage(`{"zones":[{"id":"vte","name":"Vientiane","districts":[]}]}`)
		require.NoError(t, repo.Upsert(ctx, model.ZoneDocumentID, first))

		doc, err := repo.Get(ctx, model.ZoneDocumentID)
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(doc))

		second := json.RawMessage(`{"zones":[],"version":2}`)
		require.NoError(t, repo.Upsert(ctx, model.ZoneDocumentID, second))

		doc, err = repo.Get(ctx, model.ZoneDocumentID)
		require.NoError(t, err)
		assert.JSONEq(t, string(second), string(doc))

		other, err := repo.Get(ctx, "thailand")
		require.NoError(t, err)
		assert.Nil(t, other)
	})
}
