package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "restoran/feedback-svc/internal/api/http"
	"restoran/feedback-svc/internal/domain"
	"restoran/feedback-svc/internal/mocks"
)

func setupTestRouter(mockSvc *mocks.FeedbackServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, zerolog.Nop())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_submitFeedback(t *testing.T) {
	mockSvc := mocks.NewFeedbackServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"name":"Aziz","phone":"+998901234567","message":"Great!","rating":5}`,
			prepareMocks: func() {
				mockSvc.On("Submit", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) { args.Get(1).(*domain.Feedback).ID = 11 }).
					Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"id":11`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "validation_failed",
			payload: `{"message":""}`,
			prepareMocks: func() {
				mockSvc.On("Submit", mock.Anything, mock.Anything).Return(domain.ErrInvalidInput).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "duplicate",
			payload: `{"phone":"1","message":"again"}`,
			prepareMocks: func() {
				mockSvc.On("Submit", mock.Anything, mock.Anything).Return(domain.ErrDuplicateFeedback).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "internal_error_hidden",
			payload: `{"message":"hi"}`,
			prepareMocks: func() {
				mockSvc.On("Submit", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/feedback/", bytes.NewBufferString(testCase.payload))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), testCase.expectedBody)
		})
	}
}

func TestHandler_listFeedback(t *testing.T) {
	mockSvc := mocks.NewFeedbackServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("List", mock.Anything, domain.FeedbackFilter{UnreadOnly: true}).
		Return([]domain.Feedback{{ID: 1, Message: "hi"}}, nil).Once()
	mockSvc.On("List", mock.Anything, domain.FeedbackFilter{}).
		Return([]domain.Feedback{}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feedback/?unread=true", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feedback/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
}

func TestHandler_markFeedback(t *testing.T) {
	mockSvc := mocks.NewFeedbackServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		path         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "mark_read",
			path:    "/api/feedback/3/",
			payload: `{"is_read":true}`,
			prepareMocks: func() {
				mockSvc.On("MarkRead", mock.Anything, int64(3), true).
					Return(&domain.Feedback{ID: 3, IsRead: true}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "mark_unread",
			path:    "/api/feedback/3/",
			payload: `{"is_read":false}`,
			prepareMocks: func() {
				mockSvc.On("MarkRead", mock.Anything, int64(3), false).
					Return(&domain.Feedback{ID: 3}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing_flag",
			path:         "/api/feedback/3/",
			payload:      `{}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "not_found",
			path:    "/api/feedback/404/",
			payload: `{"is_read":true}`,
			prepareMocks: func() {
				mockSvc.On("MarkRead", mock.Anything, int64(404), true).Return(nil, domain.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			req := httptest.NewRequest(http.MethodPatch, testCase.path, bytes.NewBufferString(testCase.payload))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedCode, w.Code)
		})
	}
}

func TestHandler_deleteFeedback(t *testing.T) {
	mockSvc := mocks.NewFeedbackServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Delete", mock.Anything, int64(8)).Return(nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/feedback/8/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_feedbackStats(t *testing.T) {
	mockSvc := mocks.NewFeedbackServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Stats", mock.Anything).Return(&domain.Stats{Count: 2, Rated: 2, AverageRating: 4.5}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/feedback/stats/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"average_rating":4.5`)
}
