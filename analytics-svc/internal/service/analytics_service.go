package service

import (
	"context"
	"database/sql"
	"math"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"restoran/analytics-svc/internal/domain"
)

const (
	topLimit    = 10
	allTimeKey  = "analytics:alltime"
	feedbackKey = "analytics:feedback"
	dailyPrefix = "analytics:daily:"
)

type AnalyticsService struct {
	db     *sql.DB
	rdb    *redis.Client
	logger zerolog.Logger
	now    func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		db:     db,
		rdb:    rdb,
		logger: logger,
		now:    time.Now,
	}
}

// Popular returns the most ordered menu items for the period. The counters
// kept by agg-svc are used when present, otherwise the orders are counted in
// Postgres.
func (s *AnalyticsService) Popular(ctx context.Context, period string) ([]domain.PopularItem, error) {
	var key string
	switch period {
	case domain.PeriodToday:
		key = dailyPrefix + s.now().UTC().Format("2006-01-02")
	case domain.PeriodAll:
		key = allTimeKey
	default:
		return nil, domain.ErrInvalidPeriod
	}

	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, topLimit-1).Result()
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("redis unavailable, counting in postgres")
	}
	if err != nil || len(result) == 0 {
		return s.popularFromDB(ctx, period)
	}

	ids := make([]int64, 0, len(result))
	quantities := make(map[int64]int64, len(result))
	for _, member := range result {
		id, err := strconv.ParseInt(member.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		quantities[id] = int64(member.Score)
	}

	details, err := s.menuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PopularItem, 0, len(ids))
	for _, id := range ids {
		item, ok := details[id]
		if !ok {
			continue
		}
		item.Quantity = quantities[id]
		items = append(items, item)
	}
	return items, nil
}

func (s *AnalyticsService) menuItems(ctx context.Context, ids []int64) (map[int64]domain.PopularItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_uz, name_ru, name_en, COALESCE(image_url, ''), price
		FROM menu_items
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64]domain.PopularItem, len(ids))
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.MenuItemID, &item.NameUz, &item.NameRu, &item.NameEn, &item.ImageURL, &item.Price); err != nil {
			return nil, err
		}
		items[item.MenuItemID] = item
	}
	return items, rows.Err()
}

func (s *AnalyticsService) popularFromDB(ctx context.Context, period string) ([]domain.PopularItem, error) {
	query := `
		SELECT mi.id, mi.name_uz, mi.name_ru, mi.name_en, COALESCE(mi.image_url, ''), mi.price,
			SUM(oi.quantity) AS quantity
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN menu_items mi ON oi.menu_item_id = mi.id`
	args := []any{}
	if period == domain.PeriodToday {
		y, m, d := s.now().UTC().Date()
		query += ` WHERE o.created_at >= $1`
		args = append(args, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
	query += `
		GROUP BY mi.id, mi.name_uz, mi.name_ru, mi.name_en, mi.image_url, mi.price
		ORDER BY quantity DESC, mi.id
		LIMIT ` + strconv.Itoa(topLimit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.PopularItem{}
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.MenuItemID, &item.NameUz, &item.NameRu, &item.NameEn, &item.ImageURL, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FeedbackStats reads the running totals from Redis, falling back to the
// feedback table when they are missing.
func (s *AnalyticsService) FeedbackStats(ctx context.Context) (*domain.FeedbackStats, error) {
	stats, err := s.rdb.HGetAll(ctx, feedbackKey).Result()
	if err != nil {
		s.logger.Warn().Err(err).Msg("redis unavailable, reading feedback stats from postgres")
	}

	var count, rated, sum int64
	if err == nil && len(stats) > 0 {
		count, _ = strconv.ParseInt(stats["count"], 10, 64)
		rated, _ = strconv.ParseInt(stats["rated"], 10, 64)
		sum, _ = strconv.ParseInt(stats["rating_sum"], 10, 64)
	} else if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE rating > 0), COALESCE(SUM(rating), 0)
		FROM feedback
	`).Scan(&count, &rated, &sum); err != nil {
		return nil, err
	}

	result := &domain.FeedbackStats{Count: count, Rated: rated}
	if rated > 0 {
		result.AverageRating = math.Round(float64(sum)/float64(rated)*100) / 100
	}
	return result, nil
}
