package service

import (
	"context"

	"restoran/feedback-svc/internal/domain"
)

type FeedbackServiceInterface interface {
	Submit(ctx context.Context, feedback *domain.Feedback) error
	List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	MarkRead(ctx context.Context, id int64, read bool) (*domain.Feedback, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.Stats, error)
}

type FeedbackRepository interface {
	InsertFeedback(ctx context.Context, feedback *domain.Feedback) error
	ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	SetRead(ctx context.Context, id int64, read bool) (*domain.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
	RatingDistribution(ctx context.Context) (map[string]int, error)
}

type FeedbackCache interface {
	MarkerKey(phone, message string) string
	// Claim sets the marker only if it is absent and reports whether it did.
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type FeedbackPublisher interface {
	PublishFeedback(ctx context.Context, msg domain.KafkaMessage) error
}

var _ FeedbackServiceInterface = (*FeedbackService)(nil)
