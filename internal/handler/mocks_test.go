package handler

import (
	"context"
	"encoding/json"

	"orbi-food/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogService) ListShops(ctx context.Context) ([]model.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shop), args.Error(1)
}

func (m *MockCatalogService) GetZones(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockCatalogService) ListMenu(ctx context.Context, shopID string) ([]model.MenuItem, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

// MockAdminService is a mock implementation of AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CreateShop(ctx context.Context, body model.Body) error {
	return m.Called(ctx, body).Error(0)
}

func (m *MockAdminService) UpdateShop(ctx context.Context, id string, body model.Body) error {
	return m.Called(ctx, id, body).Error(0)
}

func (m *MockAdminService) DeleteShop(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) CreateMenuItem(ctx context.Context, shopID string, body model.Body) error {
	return m.Called(ctx, shopID, body).Error(0)
}

func (m *MockAdminService) UpdateMenuItem(ctx context.Context, shopID, menuID string, body model.Body) error {
	return m.Called(ctx, shopID, menuID, body).Error(0)
}

func (m *MockAdminService) DeleteMenuItem(ctx context.Context, shopID, menuID string) error {
	return m.Called(ctx, shopID, menuID).Error(0)
}

// MockAuthenticator is a mock implementation of auth.Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) Authorize(header string) error {
	return m.Called(header).Error(0)
}
