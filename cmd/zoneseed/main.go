// Command zoneseed imports a zone document into the zones table.
//
// Usage:
//
//	zoneseed -file data/zones/laos.json.gz [-id laos] [-init-schema]
//
// With S3_ENABLED=true the file is fetched from S3_BUCKET under S3_PREFIX
// first, falling back to the local path.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orbi-food/internal/config"
	"orbi-food/internal/database"
	"orbi-food/internal/model"
	"orbi-food/internal/repository"
	"orbi-food/internal/zoneseed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "", "path of the zone document (JSON, optionally .gz)")
	id := flag.String("id", model.ZoneDocumentID, "zone document id")
	initSchema := flag.Bool("init-schema", false, "create missing tables before importing")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		return fmt.Errorf("-file is required")
	}

	cfg, err := config.LoadStore()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if *initSchema {
		if err := database.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		logger.Info().Msg("schema ensured")
	}

	// Initialize zone loader with S3 and local fallback
	fileLoader := zoneseed.NewFileLoader(logger)
	var s3Loader zoneseed.Loader
	if cfg.S3.Enabled {
		s3Loader, err = zoneseed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
	}
	loader := zoneseed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	seeder := zoneseed.NewSeeder(loader, repository.NewZoneRepository(pool, logger), logger)
	n, err := seeder.Seed(ctx, *file, *id)
	if err != nil {
		return err
	}

	logger.Info().
		Str("zone_id", *id).
		Int("bytes", n).
		Msg("zone import completed")
	return nil
}
