package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/menu-svc/internal/domain"
)

// OrderPublisher is a mock type for the service.OrderPublisher interface.
type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

// NewOrderPublisher creates a new instance of OrderPublisher and asserts its expectations on cleanup.
func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
