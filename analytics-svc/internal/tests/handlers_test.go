package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "restoran/analytics-svc/internal/api/http"
	"restoran/analytics-svc/internal/domain"
	"restoran/analytics-svc/internal/mocks"
)

func setupTestRouter(mockSvc *mocks.AnalyticsInterface) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, zerolog.Nop())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_getPopular(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		prepareMocks func(*mocks.AnalyticsInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "default period is today",
			url:  "/api/analytics/popular/",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("Popular", mock.Anything, "today").
					Return([]domain.PopularItem{{MenuItemID: 7, NameEn: "Pilaf", Quantity: 12}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"period":"today","items":[{"menu_item_id":7`,
		},
		{
			name: "all time",
			url:  "/api/analytics/popular/?period=all",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("Popular", mock.Anything, "all").Return([]domain.PopularItem{}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"items":[]`,
		},
		{
			name: "invalid period",
			url:  "/api/analytics/popular/?period=week",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("Popular", mock.Anything, "week").Return(nil, domain.ErrInvalidPeriod).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			url:  "/api/analytics/popular/?period=all",
			prepareMocks: func(m *mocks.AnalyticsInterface) {
				m.On("Popular", mock.Anything, "all").Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewAnalyticsInterface(t)
			testCase.prepareMocks(mockSvc)

			w := httptest.NewRecorder()
			setupTestRouter(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, testCase.url, nil))

			assert.Equal(t, testCase.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), testCase.expectedBody)
		})
	}
}

func TestHandler_getFeedbackStats(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	mockSvc.On("FeedbackStats", mock.Anything).
		Return(&domain.FeedbackStats{Count: 4, Rated: 3, AverageRating: 4.67}, nil).Once()

	w := httptest.NewRecorder()
	setupTestRouter(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/feedback/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":4,"rated":3,"average_rating":4.67}`, w.Body.String())
}

func TestHandler_healthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	setupTestRouter(mocks.NewAnalyticsInterface(t)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
