package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restoran/feedback-svc/internal/domain"
)

// FeedbackPublisher is a mock type for the service.FeedbackPublisher interface.
type FeedbackPublisher struct {
	mock.Mock
}

func (_m *FeedbackPublisher) PublishFeedback(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)

	return ret.Error(0)
}

// NewFeedbackPublisher creates a new instance of FeedbackPublisher and asserts its expectations on cleanup.
func NewFeedbackPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackPublisher {
	m := &FeedbackPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
