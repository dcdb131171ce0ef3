package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"restoran/feedback-svc/internal/domain"
)

type FeedbackService struct {
	repository FeedbackRepository
	cache      FeedbackCache
	publisher  FeedbackPublisher
	validate   *validator.Validate
	logger     zerolog.Logger
	now        func() time.Time
}

func NewFeedbackService(repository FeedbackRepository, cache FeedbackCache, publisher FeedbackPublisher, logger zerolog.Logger) *FeedbackService {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})
	return &FeedbackService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		validate:   v,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit stores customer feedback. The same message from the same phone is
// rejected with ErrDuplicateFeedback while its marker lives in the cache. The
// marker is claimed before the insert and released if the insert fails; a
// cache outage lets the feedback through.
func (s *FeedbackService) Submit(ctx context.Context, feedback *domain.Feedback) error {
	feedback.Name = strings.TrimSpace(feedback.Name)
	feedback.Phone = strings.TrimSpace(feedback.Phone)
	feedback.Message = strings.TrimSpace(feedback.Message)
	feedback.IsRead = false

	if err := s.check(feedback); err != nil {
		return err
	}

	var cacheKey string
	claimed := false
	if s.cache != nil {
		cacheKey = s.cache.MarkerKey(feedback.Phone, feedback.Message)
		ok, err := s.cache.Claim(ctx, cacheKey)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Msg("duplicate check unavailable")
		case !ok:
			return domain.ErrDuplicateFeedback
		default:
			claimed = true
		}
	}

	if err := s.repository.InsertFeedback(ctx, feedback); err != nil {
		if claimed {
			if rerr := s.cache.Release(ctx, cacheKey); rerr != nil {
				s.logger.Warn().Err(rerr).Msg("failed to release feedback marker")
			}
		}
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	if s.publisher != nil {
		err := s.publisher.PublishFeedback(ctx, domain.KafkaMessage{
			Type:       domain.EventNewFeedback,
			FeedbackID: feedback.ID,
			Rating:     feedback.Rating,
			Timestamp:  s.now(),
		})
		if err != nil {
			s.logger.Error().Err(err).Int64("feedback_id", feedback.ID).Msg("failed to publish feedback event")
		}
	}

	s.logger.Info().Int64("feedback_id", feedback.ID).Int("rating", feedback.Rating).Msg("feedback received")
	return nil
}

func (s *FeedbackService) check(feedback *domain.Feedback) error {
	err := s.validate.Struct(feedback)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" "+fe.Tag())
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, ", "))
}

func (s *FeedbackService) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	return s.repository.ListFeedback(ctx, filter)
}

func (s *FeedbackService) MarkRead(ctx context.Context, id int64, read bool) (*domain.Feedback, error) {
	return s.repository.SetRead(ctx, id, read)
}

func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.repository.DeleteFeedback(ctx, id)
}

func (s *FeedbackService) Stats(ctx context.Context) (*domain.Stats, error) {
	distribution, err := s.repository.RatingDistribution(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}}
	sum := 0
	for key, count := range distribution {
		rating, _ := strconv.Atoi(key)
		stats.Count += count
		if rating < 1 || rating > 5 {
			continue
		}
		stats.Distribution[key] = count
		stats.Rated += count
		sum += rating * count
	}
	if stats.Rated > 0 {
		stats.AverageRating = float64(sum) / float64(stats.Rated)
	}
	return stats, nil
}
