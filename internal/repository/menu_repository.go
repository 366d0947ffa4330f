package repository

import (
	"context"
	"fmt"

	"orbi-food/internal/model"

	"github.com/rs/zerolog"
)

var (
	listMenuQuery = `SELECT ` + menuItemColumns.selectList() + `
		FROM menu_items
		WHERE shop_id = $1
		ORDER BY sort ASC, name ASC`

	insertMenuItemQuery = `INSERT INTO menu_items (` + menuItemColumns.selectList() + `)
		VALUES (` + menuItemColumns.placeholders() + `)`

	updateMenuItemQuery = `UPDATE menu_items SET ` + menuItemColumns[2:].assignments(3) + `
		WHERE id = $1 AND shop_id = $2`

	deleteMenuItemQuery = `DELETE FROM menu_items WHERE id = $1 AND shop_id = $2`
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	db     DBTX
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(db DBTX, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		db:     db,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

func (r *menuRepository) ListByShop(ctx context.Context, shopID string) ([]model.MenuItem, error) {
	rows, err := r.db.Query(ctx, listMenuQuery, shopID)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", shopID).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}

	items, err := collect(rows, menuItemTargets)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", shopID).Msg("failed to read menu item rows")
		return nil, fmt.Errorf("failed to read menu items: %w", err)
	}

	return items, nil
}

func (r *menuRepository) Create(ctx context.Context, in model.MenuItemInput) error {
	_, err := r.db.Exec(ctx, insertMenuItemQuery, menuItemArgs(in)...)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().
				Str("shop_id", in.ShopID).
				Str("menu_id", in.ID).
				Msg("menu item id already exists")
			return model.ErrMenuItemExists
		}
		r.logger.Error().Err(err).
			Str("shop_id", in.ShopID).
			Str("menu_id", in.ID).
			Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().
		Str("shop_id", in.ShopID).
		Str("menu_id", in.ID).
		Msg("menu item created")
	return nil
}

func (r *menuRepository) Update(ctx context.Context, in model.MenuItemInput) (int64, error) {
	tag, err := r.db.Exec(ctx, updateMenuItemQuery, menuItemArgs(in)...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("shop_id", in.ShopID).
			Str("menu_id", in.ID).
			Msg("failed to update menu item")
		return 0, fmt.Errorf("failed to update menu item: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *menuRepository) Delete(ctx context.Context, shopID, menuID string) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteMenuItemQuery, menuID, shopID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("shop_id", shopID).
			Str("menu_id", menuID).
			Msg("failed to delete menu item")
		return 0, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return tag.RowsAffected(), nil
}
