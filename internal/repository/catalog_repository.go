package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"orbi-food/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

var (
	listCategoriesQuery = `SELECT ` + categoryColumns.selectList() + `
		FROM categories
		ORDER BY id ASC`

	getZoneQuery = `SELECT data FROM zones WHERE id = $1 LIMIT 1`

	upsertZoneQuery = `INSERT INTO zones (id, data) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	db     DBTX
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(db DBTX, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, listCategoriesQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories, err := collect(rows, categoryTargets)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read category rows")
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

// zoneRepository implements the ZoneRepository interface using PostgreSQL.
type zoneRepository struct {
	db     DBTX
	logger zerolog.Logger
}

// NewZoneRepository creates a new PostgreSQL-backed zone repository.
func NewZoneRepository(db DBTX, logger zerolog.Logger) ZoneRepository {
	return &zoneRepository{
		db:     db,
		logger: logger.With().Str("repository", "zone").Logger(),
	}
}

// Get returns the document stored under id. A missing row and a NULL document both yield nil.
func (r *zoneRepository) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := r.db.QueryRow(ctx, getZoneQuery, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("zone_id", id).Msg("zone document not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("zone_id", id).Msg("failed to query zone document")
		return nil, fmt.Errorf("failed to query zone document: %w", err)
	}

	if len(doc) == 0 || string(doc) == "null" {
		return nil, nil
	}
	return doc, nil
}

func (r *zoneRepository) Upsert(ctx context.Context, id string, doc json.RawMessage) error {
	if _, err := r.db.Exec(ctx, upsertZoneQuery, id, doc); err != nil {
		r.logger.Error().Err(err).Str("zone_id", id).Msg("failed to store zone document")
		return fmt.Errorf("failed to store zone document: %w", err)
	}

	r.logger.Info().Str("zone_id", id).Int("bytes", len(doc)).Msg("zone document stored")
	return nil
}
