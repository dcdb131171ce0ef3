package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"restoran/agg-svc/internal/domain"
)

const readBackoff = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	logger zerolog.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger zerolog.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		logger: logger,
	}
}

// Start reads events until ctx is cancelled. Bad messages and store errors
// are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info().Msg("starting aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info().Msg("aggregation consumer stopped")
				return
			}
			c.logger.Error().Err(err).Msg("error reading message")
			select {
			case <-ctx.Done():
				return
			case <-time.After(readBackoff):
			}
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.logger.Warn().Err(err).Int64("offset", message.Offset).Msg("error unmarshaling message")
			continue
		}

		c.Handle(ctx, msg)
	}
}

func (c *Consumer) Handle(ctx context.Context, msg domain.KafkaMessage) {
	switch msg.Type {
	case domain.EventOrderPlaced:
		c.processOrder(ctx, msg)
	case domain.EventNewFeedback:
		c.processFeedback(ctx, msg)
	default:
		c.logger.Debug().Str("type", msg.Type).Msg("ignoring event")
	}
}

func (c *Consumer) processOrder(ctx context.Context, msg domain.KafkaMessage) {
	day := msg.Timestamp
	if day.IsZero() {
		day = time.Now()
	}

	if err := c.Store.RecordOrder(ctx, day, msg.Items); err != nil {
		c.logger.Error().Err(err).Int64("order_id", msg.OrderID).Msg("error updating popularity")
		return
	}

	c.logger.Debug().Int64("order_id", msg.OrderID).Int("lines", len(msg.Items)).Msg("order counted")
}

func (c *Consumer) processFeedback(ctx context.Context, msg domain.KafkaMessage) {
	if err := c.Store.RecordFeedback(ctx, msg.Rating); err != nil {
		c.logger.Error().Err(err).Int64("feedback_id", msg.FeedbackID).Msg("error updating feedback stats")
		return
	}

	c.logger.Debug().Int64("feedback_id", msg.FeedbackID).Int("rating", msg.Rating).Msg("feedback counted")
}
