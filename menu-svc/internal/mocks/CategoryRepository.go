package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/menu-svc/internal/domain"
)

// CategoryRepository is a mock type for the service.CategoryRepository interface.
type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func (_m *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func (_m *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewCategoryRepository creates a new instance of CategoryRepository and asserts its expectations on cleanup.
func NewCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
