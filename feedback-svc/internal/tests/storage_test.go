package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restoran/feedback-svc/internal/domain"
	"restoran/feedback-svc/internal/mocks"
	"restoran/feedback-svc/internal/service"
	"restoran/feedback-svc/internal/storage"
)

func TestRedisCache_Marker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := storage.NewRedisCache(client, 10*time.Minute)
	ctx := context.Background()

	key := cache.MarkerKey("+998 90 123 45 67", "Great pilaf!")
	assert.Regexp(t, `^feedback:\+998901234567:[0-9a-f]{16}$`, key)
	assert.Equal(t, key, cache.MarkerKey("+998901234567", "  great PILAF! "))
	assert.NotEqual(t, key, cache.MarkerKey("+998901234567", "Great lagman!"))

	claimed, err := cache.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, 10*time.Minute, mr.TTL(key))

	claimed, err = cache.Claim(ctx, key)
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, cache.Release(ctx, key))
	claimed, err = cache.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, claimed)

	mr.FastForward(11 * time.Minute)
	claimed, err = cache.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestFeedbackService_ConcurrentDuplicatesStoredOnce(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repository := mocks.NewFeedbackRepository(t)
	repository.On("InsertFeedback", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewFeedbackService(repository, storage.NewRedisCache(client, 10*time.Minute), nil, zerolog.Nop())

	const submitters = 8
	errs := make([]error, submitters)
	var wg sync.WaitGroup
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Submit(context.Background(), &domain.Feedback{Phone: "+998901234567", Message: "Great pilaf!"})
		}(i)
	}
	wg.Wait()

	stored := 0
	for _, err := range errs {
		if err == nil {
			stored++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateFeedback)
	}
	assert.Equal(t, 1, stored)
}

func newMockRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_InsertFeedback(t *testing.T) {
	repo, mock := newMockRepository(t)
	createdAt := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO feedback").
		WithArgs("Aziz", "+998901234567", "Great!", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), createdAt))

	f := &domain.Feedback{Name: "Aziz", Phone: "+998901234567", Message: "Great!", Rating: 5}
	require.NoError(t, repo.InsertFeedback(context.Background(), f))
	assert.Equal(t, int64(12), f.ID)
	assert.Equal(t, createdAt, f.CreatedAt)
}

func TestPostgresRepository_ListFeedback(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	mock.ExpectQuery("FROM feedback").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "message", "rating", "is_read", "created_at"}).
			AddRow(int64(2), "Aziz", "1", "hi", int64(4), false, now).
			AddRow(int64(1), "", "", "anon", int64(0), false, now))

	feedback, err := repo.ListFeedback(context.Background(), domain.FeedbackFilter{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, feedback, 2)
	assert.Equal(t, "anon", feedback[1].Message)
	assert.Equal(t, 4, feedback[0].Rating)
}

func TestPostgresRepository_SetRead(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("UPDATE feedback SET is_read").
			WithArgs(true, int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "message", "rating", "is_read", "created_at"}).
				AddRow(int64(3), "Aziz", "1", "hi", int64(5), true, time.Now()))

		f, err := repo.SetRead(ctx, 3, true)
		require.NoError(t, err)
		assert.True(t, f.IsRead)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("UPDATE feedback SET is_read").
			WithArgs(true, int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.SetRead(ctx, 9, true)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresRepository_DeleteFeedback(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM feedback").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM feedback").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteFeedback(context.Background(), 4))
	assert.ErrorIs(t, repo.DeleteFeedback(context.Background(), 5), domain.ErrNotFound)
}

func TestPostgresRepository_RatingDistribution(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("GROUP BY rating").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(int64(0), int64(2)).
			AddRow(int64(5), int64(7)))

	distribution, err := repo.RatingDistribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"0": 2, "5": 7}, distribution)
}
