package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/menu-svc/internal/domain"
)

// OrderRepository is a mock type for the service.OrderRepository interface.
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Order) error); ok {
		return rf(ctx, order)
	}
	return ret.Error(0)
}

func (_m *OrderRepository) SaveQRCode(ctx context.Context, orderID int64, qr []byte) error {
	ret := _m.Called(ctx, orderID, qr)

	return ret.Error(0)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	var r1 []domain.OrderItem
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]domain.OrderItem)
	}

	return r0, r1, ret.Error(2)
}

func (_m *OrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewOrderRepository creates a new instance of OrderRepository and asserts its expectations on cleanup.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
