package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// FeedbackCache is a mock type for the service.FeedbackCache interface.
type FeedbackCache struct {
	mock.Mock
}

func (_m *FeedbackCache) MarkerKey(phone, message string) string {
	ret := _m.Called(phone, message)

	return ret.String(0)
}

func (_m *FeedbackCache) Claim(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)

	return ret.Bool(0), ret.Error(1)
}

func (_m *FeedbackCache) Release(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	return ret.Error(0)
}

// NewFeedbackCache creates a new instance of FeedbackCache and asserts its expectations on cleanup.
func NewFeedbackCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackCache {
	m := &FeedbackCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
