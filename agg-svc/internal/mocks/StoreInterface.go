package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"restoran/agg-svc/internal/domain"
)

// StoreInterface is a mock type for the service.StoreInterface interface.
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordOrder(ctx context.Context, day time.Time, items []domain.OrderItem) error {
	ret := _m.Called(ctx, day, items)

	return ret.Error(0)
}

func (_m *StoreInterface) RecordFeedback(ctx context.Context, rating int) error {
	ret := _m.Called(ctx, rating)

	return ret.Error(0)
}

// NewStoreInterface creates a new instance of StoreInterface and asserts its expectations on cleanup.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
