package zoneseed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Seeder loads a zone document and stores it.
type Seeder struct {
	loader Loader
	store  Store
	logger zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(loader Loader, store Store, logger zerolog.Logger) *Seeder {
	return &Seeder{
		loader: loader,
		store:  store,
		logger: logger.With().Str("component", "zone-seeder").Logger(),
	}
}

// Seed loads the document at path and upserts it under id.
// It returns the number of bytes stored.
func (s *Seeder) Seed(ctx context.Context, path, id string) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("zone document id is required")
	}

	doc, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to load zone document: %w", err)
	}

	if err := s.store.Upsert(ctx, id, doc); err != nil {
		return 0, fmt.Errorf("failed to store zone document: %w", err)
	}

	s.logger.Info().
		Str("zone_id", id).
		Str("source", path).
		Int("bytes", len(doc)).
		Msg("zone document seeded")

	return len(doc), nil
}
