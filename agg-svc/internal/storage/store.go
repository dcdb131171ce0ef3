package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"restoran/agg-svc/internal/domain"
)

// Redis keys shared with analytics-svc.
const (
	AllTimeKey  = "analytics:alltime"
	FeedbackKey = "analytics:feedback"
	dailyPrefix = "analytics:daily:"
	dailyTTL    = 8 * 24 * time.Hour
)

func DailyKey(day time.Time) string {
	return dailyPrefix + day.UTC().Format("2006-01-02")
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// RecordOrder adds each menu item's quantity to the day's and the all time
// popularity sets. Promotion lines are not menu items and are skipped.
func (s *Store) RecordOrder(ctx context.Context, day time.Time, items []domain.OrderItem) error {
	dailyKey := DailyKey(day)

	pipe := s.rdb.TxPipeline()
	counted := 0
	for _, item := range items {
		if item.MenuItemID <= 0 || item.Quantity <= 0 {
			continue
		}
		member := strconv.FormatInt(item.MenuItemID, 10)
		pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), member)
		pipe.ZIncrBy(ctx, AllTimeKey, float64(item.Quantity), member)
		counted++
	}
	if counted == 0 {
		return nil
	}
	pipe.Expire(ctx, dailyKey, dailyTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// RecordFeedback counts one feedback; rated ones also add to the rating sum.
func (s *Store) RecordFeedback(ctx context.Context, rating int) error {
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, FeedbackKey, "count", 1)
	if rating >= 1 && rating <= 5 {
		pipe.HIncrBy(ctx, FeedbackKey, "rated", 1)
		pipe.HIncrBy(ctx, FeedbackKey, "rating_sum", int64(rating))
	}
	_, err := pipe.Exec(ctx)
	return err
}
