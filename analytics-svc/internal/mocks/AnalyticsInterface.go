package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/analytics-svc/internal/domain"
)

// AnalyticsInterface is a mock type for the service.AnalyticsInterface interface.
type AnalyticsInterface struct {
	mock.Mock
}

func (_m *AnalyticsInterface) Popular(ctx context.Context, period string) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, period)

	var r0 []domain.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}

	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) FeedbackStats(ctx context.Context) (*domain.FeedbackStats, error) {
	ret := _m.Called(ctx)

	var r0 *domain.FeedbackStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.FeedbackStats)
	}

	return r0, ret.Error(1)
}

// NewAnalyticsInterface creates a new instance of AnalyticsInterface and asserts its expectations on cleanup.
func NewAnalyticsInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
