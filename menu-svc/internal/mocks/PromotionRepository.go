package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"restoran/menu-svc/internal/domain"
)

// PromotionRepository is a mock type for the service.PromotionRepository interface.
type PromotionRepository struct {
	mock.Mock
}

func (_m *PromotionRepository) CreatePromotion(ctx context.Context, p *domain.Promotion) error {
	ret := _m.Called(ctx, p)

	return ret.Error(0)
}

func (_m *PromotionRepository) ListPromotions(ctx context.Context, activeAt *time.Time) ([]domain.Promotion, error) {
	ret := _m.Called(ctx, activeAt)

	var r0 []domain.Promotion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Promotion)
	}

	return r0, ret.Error(1)
}

func (_m *PromotionRepository) GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Promotion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Promotion)
	}

	return r0, ret.Error(1)
}

func (_m *PromotionRepository) UpdatePromotion(ctx context.Context, p *domain.Promotion) error {
	ret := _m.Called(ctx, p)

	return ret.Error(0)
}

func (_m *PromotionRepository) DeletePromotion(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewPromotionRepository creates a new instance of PromotionRepository and asserts its expectations on cleanup.
func NewPromotionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PromotionRepository {
	m := &PromotionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
