package tests

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restoran/feedback-svc/internal/domain"
	"restoran/feedback-svc/internal/mocks"
	"restoran/feedback-svc/internal/service"
)

func TestFeedbackService_Submit(t *testing.T) {
	repository := mocks.NewFeedbackRepository(t)
	cache := mocks.NewFeedbackCache(t)
	publisher := mocks.NewFeedbackPublisher(t)

	svc := service.NewFeedbackService(repository, cache, publisher, zerolog.Nop())

	ctx := context.Background()

	tests := []struct {
		name          string
		feedback      *domain.Feedback
		prepareMocks  func()
		expectedError error
	}{
		{
			name:     "success_new_feedback",
			feedback: &domain.Feedback{Name: "Aziz", Phone: "+998901234567", Message: "Great pilaf!", Rating: 5},
			prepareMocks: func() {
				cache.On("MarkerKey", "+998901234567", "Great pilaf!").Return("feedback:1").Once()
				cache.On("Claim", ctx, "feedback:1").Return(true, nil).Once()
				repository.On("InsertFeedback", ctx, mock.Anything).Return(nil).Once()
				publisher.On("PublishFeedback", ctx, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
					return msg.Type == domain.EventNewFeedback && msg.Rating == 5
				})).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_empty_message",
			feedback:      &domain.Feedback{Phone: "1", Message: "   ", Rating: 3},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "error_rating_out_of_range",
			feedback:      &domain.Feedback{Message: "ok", Rating: 6},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:     "error_duplicate_feedback",
			feedback: &domain.Feedback{Phone: "2", Message: "Same again"},
			prepareMocks: func() {
				cache.On("MarkerKey", "2", "Same again").Return("feedback:2").Once()
				cache.On("Claim", ctx, "feedback:2").Return(false, nil).Once()
			},
			expectedError: domain.ErrDuplicateFeedback,
		},
		{
			name:     "success_when_cache_is_down",
			feedback: &domain.Feedback{Phone: "3", Message: "No rating"},
			prepareMocks: func() {
				cache.On("MarkerKey", "3", "No rating").Return("feedback:3").Once()
				cache.On("Claim", ctx, "feedback:3").Return(false, assert.AnError).Once()
				repository.On("InsertFeedback", ctx, mock.Anything).Return(nil).Once()
				publisher.On("PublishFeedback", ctx, mock.Anything).Return(assert.AnError).Once()
			},
			expectedError: nil,
		},
		{
			name:     "error_database_releases_marker",
			feedback: &domain.Feedback{Phone: "4", Message: "Lost"},
			prepareMocks: func() {
				cache.On("MarkerKey", "4", "Lost").Return("feedback:4").Once()
				cache.On("Claim", ctx, "feedback:4").Return(true, nil).Once()
				repository.On("InsertFeedback", ctx, mock.Anything).Return(assert.AnError).Once()
				cache.On("Release", ctx, "feedback:4").Return(nil).Once()
			},
			expectedError: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Submit(ctx, testCase.feedback)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestFeedbackService_SubmitTrimsAndResetsRead(t *testing.T) {
	repository := mocks.NewFeedbackRepository(t)
	ctx := context.Background()

	repository.On("InsertFeedback", ctx, mock.MatchedBy(func(f *domain.Feedback) bool {
		return f.Name == "Aziz" && f.Message == "Tasty" && !f.IsRead
	})).Return(nil).Once()

	svc := service.NewFeedbackService(repository, nil, nil, zerolog.Nop())
	err := svc.Submit(ctx, &domain.Feedback{Name: " Aziz ", Message: "\tTasty\n", IsRead: true})
	assert.NoError(t, err)
}

func TestFeedbackService_List(t *testing.T) {
	repository := mocks.NewFeedbackRepository(t)
	svc := service.NewFeedbackService(repository, nil, nil, zerolog.Nop())
	ctx := context.Background()

	expected := []domain.Feedback{
		{ID: 2, Message: "b", CreatedAt: time.Now()},
		{ID: 1, Message: "a", CreatedAt: time.Now()},
	}
	repository.On("ListFeedback", ctx, domain.FeedbackFilter{UnreadOnly: true}).Return(expected, nil).Once()

	feedback, err := svc.List(ctx, domain.FeedbackFilter{UnreadOnly: true})
	assert.NoError(t, err)
	assert.Equal(t, expected, feedback)
}

func TestFeedbackService_MarkReadAndDelete(t *testing.T) {
	repository := mocks.NewFeedbackRepository(t)
	svc := service.NewFeedbackService(repository, nil, nil, zerolog.Nop())
	ctx := context.Background()

	repository.On("SetRead", ctx, int64(5), true).Return(&domain.Feedback{ID: 5, IsRead: true}, nil).Once()
	repository.On("DeleteFeedback", ctx, int64(6)).Return(domain.ErrNotFound).Once()

	feedback, err := svc.MarkRead(ctx, 5, true)
	require.NoError(t, err)
	assert.True(t, feedback.IsRead)

	assert.ErrorIs(t, svc.Delete(ctx, 6), domain.ErrNotFound)
}

func TestFeedbackService_Stats(t *testing.T) {
	tests := []struct {
		name         string
		distribution map[string]int
		want         domain.Stats
	}{
		{
			name:         "empty",
			distribution: map[string]int{},
			want: domain.Stats{
				Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
			},
		},
		{
			name:         "unrated feedback is counted but not averaged",
			distribution: map[string]int{"0": 3, "4": 1, "5": 3},
			want: domain.Stats{
				Count:         7,
				Rated:         4,
				AverageRating: 4.75,
				Distribution:  map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 3},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewFeedbackRepository(t)
			repository.On("RatingDistribution", mock.Anything).Return(testCase.distribution, nil).Once()

			stats, err := service.NewFeedbackService(repository, nil, nil, zerolog.Nop()).Stats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, testCase.want, *stats)
		})
	}
}
