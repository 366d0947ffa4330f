package service

import (
	"context"
	"encoding/json"

	"orbi-food/internal/model"
)

// CatalogService defines the public, read-only directory queries.
type CatalogService interface {
	// ListCategories returns every category ordered by id.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// ListShops returns every shop, featured first, then by order count.
	ListShops(ctx context.Context) ([]model.Shop, error)

	// GetZones returns the stored zone document, or an empty zone list when none is stored.
	GetZones(ctx context.Context) (json.RawMessage, error)

	// ListMenu returns the menu of a shop. Unknown shops have an empty menu.
	ListMenu(ctx context.Context, shopID string) ([]model.MenuItem, error)
}

// AdminService defines the authenticated shop and menu mutations.
// Updates and deletes that match no row still succeed.
type AdminService interface {
	CreateShop(ctx context.Context, body model.Body) error
	UpdateShop(ctx context.Context, id string, body model.Body) error
	DeleteShop(ctx context.Context, id string) error

	CreateMenuItem(ctx context.Context, shopID string, body model.Body) error
	UpdateMenuItem(ctx context.Context, shopID, menuID string, body model.Body) error
	DeleteMenuItem(ctx context.Context, shopID, menuID string) error
}
