package service

import (
	"context"
	"errors"
	"fmt"

	"orbi-food/internal/model"
	"orbi-food/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// adminService implements AdminService.
type adminService struct {
	shopRepo repository.ShopRepository
	menuRepo repository.MenuRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	shopRepo repository.ShopRepository,
	menuRepo repository.MenuRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		shopRepo: shopRepo,
		menuRepo: menuRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With().Str("service", "admin").Logger(),
	}
}

// checkKey rejects inputs whose id or name is empty.
func (s *adminService) checkKey(key model.RecordKey) error {
	if err := s.validate.Struct(key); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			s.logger.Warn().Str("field", verrs[0].Field()).Msg("required field missing")
			return model.ErrRecordKeyMissing
		}
		return fmt.Errorf("failed to validate input: %w", err)
	}
	return nil
}

// passDomain returns domain errors unchanged and wraps everything else.
func passDomain(err error, msg string) error {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *adminService) CreateShop(ctx context.Context, body model.Body) error {
	in := model.NewShopInput(body)
	if err := s.checkKey(in.Key()); err != nil {
		return err
	}

	if err := s.shopRepo.Create(ctx, in); err != nil {
		return passDomain(err, "failed to create shop")
	}

	s.logger.Info().Str("shop_id", in.ID).Msg("shop created")
	return nil
}

func (s *adminService) UpdateShop(ctx context.Context, id string, body model.Body) error {
	affected, err := s.shopRepo.Update(ctx, model.UpdateShopInput(id, body))
	if err != nil {
		return passDomain(err, "failed to update shop")
	}

	s.logger.Debug().Str("shop_id", id).Int64("rows_affected", affected).Msg("shop updated")
	return nil
}

func (s *adminService) DeleteShop(ctx context.Context, id string) error {
	affected, err := s.shopRepo.Delete(ctx, id)
	if err != nil {
		return passDomain(err, "failed to delete shop")
	}

	s.logger.Debug().Str("shop_id", id).Int64("rows_affected", affected).Msg("shop deleted")
	return nil
}

func (s *adminService) CreateMenuItem(ctx context.Context, shopID string, body model.Body) error {
	in := model.NewMenuItemInput(shopID, body)
	if err := s.checkKey(in.Key()); err != nil {
		return err
	}

	if err := s.menuRepo.Create(ctx, in); err != nil {
		return passDomain(err, "failed to create menu item")
	}

	s.logger.Info().
		Str("shop_id", shopID).
		Str("menu_id", in.ID).
		Msg("menu item created")
	return nil
}

func (s *adminService) UpdateMenuItem(ctx context.Context, shopID, menuID string, body model.Body) error {
	affected, err := s.menuRepo.Update(ctx, model.UpdateMenuItemInput(shopID, menuID, body))
	if err != nil {
		return passDomain(err, "failed to update menu item")
	}

	s.logger.Debug().
		Str("shop_id", shopID).
		Str("menu_id", menuID).
		Int64("rows_affected", affected).
		Msg("menu item updated")
	return nil
}

func (s *adminService) DeleteMenuItem(ctx context.Context, shopID, menuID string) error {
	affected, err := s.menuRepo.Delete(ctx, shopID, menuID)
	if err != nil {
		return passDomain(err, "failed to delete menu item")
	}

	s.logger.Debug().
		Str("shop_id", shopID).
		Str("menu_id", menuID).
		Int64("rows_affected", affected).
		Msg("menu item deleted")
	return nil
}
