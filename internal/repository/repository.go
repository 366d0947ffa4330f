package repository

import (
	"context"
	"encoding/json"

	"orbi-food/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories use. Each call borrows
// a pooled connection for the duration of one statement.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CategoryRepository defines data access for shop categories.
type CategoryRepository interface {
	// List returns every category ordered by id.
	List(ctx context.Context) ([]model.Category, error)
}

// ShopRepository defines data access for shops.
type ShopRepository interface {
	// List returns every shop, featured first, then by order count (nulls last).
	List(ctx context.Context) ([]model.Shop, error)

	// Create inserts a new shop row.
	Create(ctx context.Context, in model.ShopInput) error

	// Update replaces all mutable columns of the shop with in.ID and reports
	// the number of rows touched.
	Update(ctx context.Context, in model.ShopInput) (int64, error)

	// Delete removes the shop with the given id and reports the number of rows removed.
	Delete(ctx context.Context, id string) (int64, error)
}

// MenuRepository defines data access for menu items. Writes are scoped by
// the (id, shop_id) pair.
type MenuRepository interface {
	// ListByShop returns a shop's menu ordered by sort then name.
	ListByShop(ctx context.Context, shopID string) ([]model.MenuItem, error)

	// Create inserts a new menu item.
	Create(ctx context.Context, in model.MenuItemInput) error

	// Update replaces the menu item identified by (in.ID, in.ShopID).
	Update(ctx context.Context, in model.MenuItemInput) (int64, error)

	// Delete removes the menu item identified by (menuID, shopID).
	Delete(ctx context.Context, shopID, menuID string) (int64, error)
}

// ZoneRepository defines data access for zone documents.
type ZoneRepository interface {
	// Get returns the stored document, or nil when none exists.
	Get(ctx context.Context, id string) (json.RawMessage, error)

	// Upsert stores doc under id, replacing any previous document.
	Upsert(ctx context.Context, id string, doc json.RawMessage) error
}
