package service

import (
	"context"
	"encoding/json"
	"fmt"

	"orbi-food/internal/model"
	"orbi-food/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	shopRepo     repository.ShopRepository
	menuRepo     repository.MenuRepository
	zoneRepo     repository.ZoneRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	shopRepo repository.ShopRepository,
	menuRepo repository.MenuRepository,
	zoneRepo repository.ZoneRepository,
	logger zerolog.Logger,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		shopRepo:     shopRepo,
		menuRepo:     menuRepo,
		zoneRepo:     zoneRepo,
		logger:       logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")
	return categories, nil
}

func (s *catalogService) ListShops(ctx context.Context) ([]model.Shop, error) {
	shops, err := s.shopRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	s.logger.Debug().Int("count", len(shops)).Msg("retrieved shops")
	return shops, nil
}

func (s *catalogService) GetZones(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.zoneRepo.Get(ctx, model.ZoneDocumentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get zones: %w", err)
	}

	if doc == nil {
		s.logger.Debug().Str("zone_id", model.ZoneDocumentID).Msg("no zone document stored, serving empty list")
		return model.EmptyZones, nil
	}

	return doc, nil
}

func (s *catalogService) ListMenu(ctx context.Context, shopID string) ([]model.MenuItem, error) {
	items, err := s.menuRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	if items == nil {
		items = []model.MenuItem{}
	}

	s.logger.Debug().
		Str("shop_id", shopID).
		Int("count", len(items)).
		Msg("retrieved menu")

	return items, nil
}
