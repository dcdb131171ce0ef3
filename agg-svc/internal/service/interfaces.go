package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"restoran/agg-svc/internal/domain"
	"restoran/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, day time.Time, items []domain.OrderItem) error
	RecordFeedback(ctx context.Context, rating int) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Handle(ctx context.Context, msg domain.KafkaMessage)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
