package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"restoran/analytics-svc/internal/domain"
	"restoran/analytics-svc/internal/service"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	logger    zerolog.Logger
}

func NewHandler(svc service.AnalyticsInterface, logger zerolog.Logger) *Handler {
	return &Handler{Analytics: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/analytics/popular/", h.getPopular).Methods("GET")
	r.HandleFunc("/api/analytics/feedback/", h.getFeedbackStats).Methods("GET")
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = domain.PeriodToday
	}

	items, err := h.Analytics.Popular(r.Context(), period)
	if errors.Is(err, domain.ErrInvalidPeriod) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("period", period).Msg("failed to load popular items")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, domain.PopularResponse{Period: period, Items: items})
}

func (h *Handler) getFeedbackStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Analytics.FeedbackStats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load feedback stats")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
