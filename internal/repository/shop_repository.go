package repository

import (
	"context"
	"errors"
	"fmt"

	"orbi-food/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// pgUniqueViolation is the SQLSTATE for duplicate keys.
const pgUniqueViolation = "23505"

var (
	listShopsQuery = `SELECT ` + shopColumns.selectList() + `
		FROM shops
		ORDER BY featured DESC, orders DESC NULLS LAST`

	insertShopQuery = `INSERT INTO shops (` + shopColumns.selectList() + `)
		VALUES (` + shopColumns.placeholders() + `)`

	updateShopQuery = `UPDATE shops SET ` + shopColumns[1:].assignments(2) + `
		WHERE id = $1`

	deleteShopQuery = `DELETE FROM shops WHERE id = $1`
)

// shopRepository implements the ShopRepository interface using PostgreSQL.
type shopRepository struct {
	db     DBTX
	logger zerolog.Logger
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(db DBTX, logger zerolog.Logger) ShopRepository {
	return &shopRepository{
		db:     db,
		logger: logger.With().Str("repository", "shop").Logger(),
	}
}

// List returns every shop, featured first, then by order count (nulls last).
func (r *shopRepository) List(ctx context.Context) ([]model.Shop, error) {
	rows, err := r.db.Query(ctx, listShopsQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query shops")
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}

	shops, err := collect(rows, shopTargets)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read shop rows")
		return nil, fmt.Errorf("failed to read shops: %w", err)
	}

	return shops, nil
}

// Create inserts a new shop row. A duplicate id yields model.ErrShopExists.
func (r *shopRepository) Create(ctx context.Context, in model.ShopInput) error {
	_, err := r.db.Exec(ctx, insertShopQuery, shopArgs(in)...)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("shop_id", in.ID).Msg("shop id already exists")
			return model.ErrShopExists
		}
		r.logger.Error().Err(err).Str("shop_id", in.ID).Msg("failed to create shop")
		return fmt.Errorf("failed to create shop: %w", err)
	}

	r.logger.Debug().Str("shop_id", in.ID).Msg("shop created")
	return nil
}

// Update replaces all mutable columns of the shop with in.ID.
func (r *shopRepository) Update(ctx context.Context, in model.ShopInput) (int64, error) {
	tag, err := r.db.Exec(ctx, updateShopQuery, shopArgs(in)...)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", in.ID).Msg("failed to update shop")
		return 0, fmt.Errorf("failed to update shop: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes the shop with the given id. Menu items are left to the store.
func (r *shopRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteShopQuery, id)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", id).Msg("failed to delete shop")
		return 0, fmt.Errorf("failed to delete shop: %w", err)
	}

	return tag.RowsAffected(), nil
}

// collect scans every row into a T using the mapping table's targets.
// The result is never nil so empty listings encode as [].
func collect[T any](rows pgx.Rows, targets func(*T) []any) ([]T, error) {
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var item T
		if err := rows.Scan(targets(&item)...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
