package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/menu-svc/internal/domain"
)

// ContentRepository is a mock type for the service.ContentRepository interface.
type ContentRepository struct {
	mock.Mock
}

func (_m *ContentRepository) CreateTextContent(ctx context.Context, c *domain.TextContent) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func (_m *ContentRepository) ListTextContents(ctx context.Context) ([]domain.TextContent, error) {
	ret := _m.Called(ctx)

	var r0 []domain.TextContent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.TextContent)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) GetTextContent(ctx context.Context, key string) (*domain.TextContent, error) {
	ret := _m.Called(ctx, key)

	var r0 *domain.TextContent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.TextContent)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) UpdateTextContent(ctx context.Context, c *domain.TextContent) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

func (_m *ContentRepository) DeleteTextContent(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

// NewContentRepository creates a new instance of ContentRepository and asserts its expectations on cleanup.
func NewContentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContentRepository {
	m := &ContentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
