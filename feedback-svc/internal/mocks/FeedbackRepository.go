package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/feedback-svc/internal/domain"
)

// FeedbackRepository is a mock type for the service.FeedbackRepository interface.
type FeedbackRepository struct {
	mock.Mock
}

func (_m *FeedbackRepository) InsertFeedback(ctx context.Context, feedback *domain.Feedback) error {
	ret := _m.Called(ctx, feedback)

	return ret.Error(0)
}

func (_m *FeedbackRepository) ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Feedback)
	}

	return r0, ret.Error(1)
}

func (_m *FeedbackRepository) SetRead(ctx context.Context, id int64, read bool) (*domain.Feedback, error) {
	ret := _m.Called(ctx, id, read)

	var r0 *domain.Feedback
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Feedback)
	}

	return r0, ret.Error(1)
}

func (_m *FeedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *FeedbackRepository) RatingDistribution(ctx context.Context) (map[string]int, error) {
	ret := _m.Called(ctx)

	var r0 map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}

	return r0, ret.Error(1)
}

// NewFeedbackRepository creates a new instance of FeedbackRepository and asserts its expectations on cleanup.
func NewFeedbackRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackRepository {
	m := &FeedbackRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
