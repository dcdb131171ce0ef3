package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/menu-svc/internal/domain"
)

// MenuItemRepository is a mock type for the service.MenuItemRepository interface.
type MenuItemRepository struct {
	mock.Mock
}

func (_m *MenuItemRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	ret := _m.Called(ctx, m)

	return ret.Error(0)
}

func (_m *MenuItemRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MenuItemRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	ret := _m.Called(ctx, m)

	return ret.Error(0)
}

func (_m *MenuItemRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewMenuItemRepository creates a new instance of MenuItemRepository and asserts its expectations on cleanup.
func NewMenuItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
