package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/catalog"
)

// CatalogReader is a mock type for the service.CatalogReader interface.
type CatalogReader struct {
	mock.Mock
}

func (_m *CatalogReader) MenuItem(ctx context.Context, id string) (*catalog.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *catalog.MenuItem
	if rf, ok := ret.Get(0).(func(context.Context, string) *catalog.MenuItem); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*catalog.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *CatalogReader) Promotion(ctx context.Context, id string) (*catalog.Promotion, error) {
	ret := _m.Called(ctx, id)

	var r0 *catalog.Promotion
	if rf, ok := ret.Get(0).(func(context.Context, string) *catalog.Promotion); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*catalog.Promotion)
	}

	return r0, ret.Error(1)
}

func (_m *CatalogReader) PlaceOrder(ctx context.Context, order catalog.OrderRequest) (*catalog.Order, error) {
	ret := _m.Called(ctx, order)

	var r0 *catalog.Order
	if rf, ok := ret.Get(0).(func(context.Context, catalog.OrderRequest) *catalog.Order); ok {
		r0 = rf(ctx, order)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*catalog.Order)
	}

	return r0, ret.Error(1)
}

// NewCatalogReader creates a new instance of CatalogReader. It also registers
// a cleanup function to assert the mocks expectations.
func NewCatalogReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogReader {
	m := &CatalogReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
