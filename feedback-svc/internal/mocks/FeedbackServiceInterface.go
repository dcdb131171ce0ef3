package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/feedback-svc/internal/domain"
)

// FeedbackServiceInterface is a mock type for the service.FeedbackServiceInterface interface.
type FeedbackServiceInterface struct {
	mock.Mock
}

func (_m *FeedbackServiceInterface) Submit(ctx context.Context, feedback *domain.Feedback) error {
	ret := _m.Called(ctx, feedback)

	return ret.Error(0)
}

func (_m *FeedbackServiceInterface) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Feedback)
	}

	return r0, ret.Error(1)
}

func (_m *FeedbackServiceInterface) MarkRead(ctx context.Context, id int64, read bool) (*domain.Feedback, error) {
	ret := _m.Called(ctx, id, read)

	var r0 *domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Feedback)
	}

	return r0, ret.Error(1)
}

func (_m *FeedbackServiceInterface) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *FeedbackServiceInterface) Stats(ctx context.Context) (*domain.Stats, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Stats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Stats)
	}

	return r0, ret.Error(1)
}

// NewFeedbackServiceInterface creates a new instance of FeedbackServiceInterface and asserts its expectations on cleanup.
func NewFeedbackServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackServiceInterface {
	m := &FeedbackServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
