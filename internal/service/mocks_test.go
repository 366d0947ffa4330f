package service

import (
	"context"
	"encoding/json"

	"orbi-food/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// MockShopRepository is a mock implementation of ShopRepository.
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) List(ctx context.Context) ([]model.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shop), args.Error(1)
}

func (m *MockShopRepository) Create(ctx context.Context, in model.ShopInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, in model.ShopInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) ListByShop(ctx context.Context, shopID string) ([]model.MenuItem, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, in model.MenuItemInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, in model.MenuItemInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, shopID, menuID string) (int64, error) {
	args := m.Called(ctx, shopID, menuID)
	return args.Get(0).(int64), args.Error(1)
}

// MockZoneRepository is a mock implementation of ZoneRepository.
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) Get(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockZoneRepository) Upsert(ctx context.Context, id string, doc json.RawMessage) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}
