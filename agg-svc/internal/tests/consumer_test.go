package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restoran/agg-svc/internal/domain"
	"restoran/agg-svc/internal/mocks"
	"restoran/agg-svc/internal/service"
)

func TestConsumer_Handle(t *testing.T) {
	placedAt := time.Date(2026, 4, 2, 13, 0, 0, 0, time.UTC)
	items := []domain.OrderItem{{MenuItemID: 7, Quantity: 5}, {PromotionID: 3, Quantity: 1}}

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:         "order placed",
			inputMessage: domain.KafkaMessage{Type: domain.EventOrderPlaced, OrderID: 42, Items: items, Timestamp: placedAt},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, placedAt, items).Return(nil).Once()
			},
		},
		{
			name:         "order store error",
			inputMessage: domain.KafkaMessage{Type: domain.EventOrderPlaced, OrderID: 42, Items: items, Timestamp: placedAt},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, placedAt, items).Return(errors.New("redis error")).Once()
			},
		},
		{
			name:         "order without timestamp uses now",
			inputMessage: domain.KafkaMessage{Type: domain.EventOrderPlaced, OrderID: 43, Items: items},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
					return time.Since(day) < time.Minute
				}), items).Return(nil).Once()
			},
		},
		{
			name:         "new feedback",
			inputMessage: domain.KafkaMessage{Type: domain.EventNewFeedback, FeedbackID: 9, Rating: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordFeedback", mock.Anything, 4).Return(nil).Once()
			},
		},
		{
			name:           "unknown type",
			inputMessage:   domain.KafkaMessage{Type: "new_review", Rating: 5},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore, zerolog.Nop())
			consumer.Handle(context.Background(), testCase.inputMessage)
		})
	}
}

// fakeReader hands out queued messages, then blocks until the context ends.
type fakeReader struct {
	messages []kafka.Message
	errs     []error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return kafka.Message{}, err
	}
	if len(r.messages) > 0 {
		m := r.messages[0]
		r.messages = r.messages[1:]
		return m, nil
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func TestConsumer_Start(t *testing.T) {
	order, err := json.Marshal(domain.KafkaMessage{
		Type:  domain.EventOrderPlaced,
		Items: []domain.OrderItem{{MenuItemID: 7, Quantity: 2}},
	})
	require.NoError(t, err)
	feedback, err := json.Marshal(domain.KafkaMessage{Type: domain.EventNewFeedback, Rating: 5})
	require.NoError(t, err)

	reader := &fakeReader{messages: []kafka.Message{
		{Value: []byte("not json")},
		{Value: order},
		{Value: feedback},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("RecordOrder", mock.Anything, mock.Anything, []domain.OrderItem{{MenuItemID: 7, Quantity: 2}}).Return(nil).Once()
	mockStore.On("RecordFeedback", mock.Anything, 5).Return(nil).Once().Run(func(mock.Arguments) { cancel() })

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, mockStore, zerolog.Nop()).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}

func TestConsumer_StartStopsDuringBackoff(t *testing.T) {
	reader := &fakeReader{errs: []error{errors.New("broker down")}}
	mockStore := mocks.NewStoreInterface(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	service.NewConsumer(reader, mockStore, zerolog.Nop()).Start(ctx)
	assert.Less(t, time.Since(start), time.Second)
}
