package service

import (
	"context"

	"restoran/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	Popular(ctx context.Context, period string) ([]domain.PopularItem, error)
	FeedbackStats(ctx context.Context) (*domain.FeedbackStats, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
